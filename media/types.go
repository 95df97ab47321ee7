// media/types.go
package media

import "errors"

type AssetType string

const (
	AssetTypeCover AssetType = "cover"
)

// ErrUnsupportedImage is returned when uploaded bytes are not a JPEG or PNG image.
var ErrUnsupportedImage = errors.New("unsupported image")
