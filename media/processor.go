package media

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	CoverJpegQuality = 90
)

// coverFormats maps a decoded image format to its encoder and file extension.
var coverFormats = map[string]struct {
	format    imaging.Format
	extension string
}{
	"jpeg": {imaging.JPEG, ".jpg"},
	"png":  {imaging.PNG, ".png"},
}

// Processor handles media transformations for uploaded covers. it relies on
// a Store implementation for saving the results.
type Processor struct {
	store   Store
	maxSize int
}

// NewProcessor returns a Processor that scales covers down so their longest
// side is at most maxSize pixels. maxSize 0 keeps the original dimensions.
func NewProcessor(store Store, maxSize int) *Processor {
	return &Processor{store: store, maxSize: maxSize}
}

// ProcessCover decodes an uploaded cover, turns it upright according to its
// EXIF orientation, scales it down when needed, re-encodes it in its original
// format and saves it under a random UUID filename. returns the relative path
// to the saved cover or error.
func (p *Processor) ProcessCover(fileData io.Reader) (string, error) {
	data, err := io.ReadAll(fileData)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded cover: %w", err)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: failed to decode uploaded cover: %v", ErrUnsupportedImage, err)
	}
	target, ok := coverFormats[format]
	if !ok {
		return "", fmt.Errorf("%w: format %s", ErrUnsupportedImage, format)
	}
	log.Printf("processor: Decoded uploaded cover (format: %s)", format)

	if format == "jpeg" {
		if orientation := exifOrientation(data); orientation != 1 {
			img = applyOrientation(img, orientation)
		}
	}

	bounds := img.Bounds()
	if p.maxSize > 0 && (bounds.Dx() > p.maxSize || bounds.Dy() > p.maxSize) {
		img = imaging.Fit(img, p.maxSize, p.maxSize, imaging.Lanczos)
	}

	reader, writer := io.Pipe()
	go func() {
		defer writer.Close()
		err := imaging.Encode(writer, img, target.format, imaging.JPEGQuality(CoverJpegQuality))
		if err != nil {
			log.Printf("processor: Failed to encode cover: %v", err)
			writer.CloseWithError(fmt.Errorf("cover encoding failed: %w", err))
		}
	}()

	coverUUID, err := uuid.NewRandom()
	if err != nil {
		reader.CloseWithError(err)
		return "", fmt.Errorf("failed to generate UUID for cover: %w", err)
	}
	targetFilename := coverUUID.String() + target.extension

	savedRelPath, err := p.store.Save(AssetTypeCover, targetFilename, reader)
	if err != nil {
		reader.CloseWithError(err)
		return "", fmt.Errorf("failed to save cover via store: %w", err)
	}

	log.Printf("processor: Processed and saved cover to %s", savedRelPath)
	return savedRelPath, nil
}
