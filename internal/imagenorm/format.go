package imagenorm

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	// Decoders beyond the standard library's jpeg/png/gif.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Formats with a registered decoder.
var decodable = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"image/bmp":  true,
	"image/tiff": true,
}

// DetectFormat sniffs the media type of data from its content, ignoring
// whatever type the source declared.
func DetectFormat(data []byte) string {
	return mimetype.Detect(data).String()
}

// checkDecodable rejects formats no registered decoder understands, such as
// HEIC photos from phone cameras, before decoding is attempted.
func checkDecodable(data []byte) (string, error) {
	format := DetectFormat(data)
	if !decodable[format] {
		return format, fmt.Errorf("%w: unsupported format %s", ErrDecode, format)
	}
	return format, nil
}
