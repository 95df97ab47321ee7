package media

import (
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"strings"
)

// allowedCoverTypes are the declared upload content types accepted for cover art.
var allowedCoverTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/jpg":  true,
}

// IsAllowedCoverType reports whether a declared upload content type may be
// stored as cover art. Parameters such as charset are ignored.
func IsAllowedCoverType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return allowedCoverTypes[strings.ToLower(mediaType)]
}
