package media

import (
	"fmt"
	"io"
	"path"
	"strings"
)

// Covers stores game cover art and maps stored files to the public
// /<subdir>/<filename> paths kept on Game.Image.
type Covers struct {
	store     *LocalStorage
	processor *Processor
}

// NewCovers wires a LocalStorage and a Processor into a cover store.
func NewCovers(store *LocalStorage, processor *Processor) *Covers {
	return &Covers{store: store, processor: processor}
}

// SaveCover processes and stores an uploaded cover and returns its public path.
func (c *Covers) SaveCover(data io.Reader) (string, error) {
	relPath, err := c.processor.ProcessCover(data)
	if err != nil {
		return "", err
	}
	return path.Join("/", relPath), nil
}

// DeleteCover removes the file behind a public cover path. Only the base
// name is trusted, so a stored path can never reach outside the covers directory.
func (c *Covers) DeleteCover(publicPath string) error {
	name := path.Base(strings.TrimSpace(publicPath))
	if name == "" || name == "." || name == "/" || name == ".." {
		return fmt.Errorf("invalid cover path '%s'", publicPath)
	}
	return c.store.Delete(path.Join(c.store.SubDir(AssetTypeCover), name))
}
