// Package imagenorm turns arbitrary user photos into bounded-size JPEGs for
// upload and classification.
package imagenorm

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "image/gif"
	_ "image/png"

	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

const (
	DefaultMaxDimension = 1024
	DefaultQuality      = 0.85
	DefaultTimeout      = 10 * time.Second
)

var (
	ErrRead    = errors.New("could not read image")
	ErrDecode  = errors.New("could not decode image")
	ErrEncode  = errors.New("could not encode image")
	ErrTimeout = errors.New("image processing timed out")
)

// Source is a raw image owned by the caller for one normalization.
type Source struct {
	Name      string
	MediaType string
	Data      []byte
}

// ReadFile loads the file at path as a Source.
func ReadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Source{
		Name:      filepath.Base(path),
		MediaType: DetectFormat(data),
		Data:      data,
	}, nil
}

// Image is a normalized JPEG.
type Image struct {
	Blob    []byte
	DataURI string
	Width   int
	Height  int
}

// Release drops the encoded bytes once the image is no longer displayed.
func (img *Image) Release() {
	if img == nil {
		return
	}
	img.Blob = nil
	img.DataURI = ""
}

type decodeFunc func(r io.Reader) (image.Image, string, error)

// Normalizer decodes, downscales and re-encodes images as JPEG.
type Normalizer struct {
	maxDimension int
	quality      float64
	timeout      time.Duration
	logger       *zap.Logger
	decode       decodeFunc
}

type Option func(*Normalizer)

func WithMaxDimension(px int) Option {
	return func(n *Normalizer) { n.maxDimension = px }
}

// WithQuality sets the JPEG quality on a 0-1 scale.
func WithQuality(q float64) Option {
	return func(n *Normalizer) { n.quality = q }
}

func WithTimeout(d time.Duration) Option {
	return func(n *Normalizer) { n.timeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(n *Normalizer) { n.logger = l }
}

func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		maxDimension: DefaultMaxDimension,
		quality:      DefaultQuality,
		timeout:      DefaultTimeout,
		logger:       zap.NewNop(),
		decode:       image.Decode,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = zap.NewNop()
	}
	return n
}

// Normalize runs src through a Normalizer with the given bounds and the default timeout.
func Normalize(ctx context.Context, src Source, maxDimension int, quality float64) (*Image, error) {
	return New(WithMaxDimension(maxDimension), WithQuality(quality)).Normalize(ctx, src)
}

type result struct {
	img *Image
	err error
}

// Normalize decodes src, scales it to fit the configured max dimension and
// encodes it as JPEG. The whole pipeline shares one deadline; ctx cancellation
// is honoured too.
func (n *Normalizer) Normalize(ctx context.Context, src Source) (*Image, error) {
	if n.maxDimension <= 0 {
		return nil, fmt.Errorf("%w: max dimension must be positive, got %d", ErrEncode, n.maxDimension)
	}
	if n.quality <= 0 || n.quality > 1 {
		return nil, fmt.Errorf("%w: quality must be in (0, 1], got %v", ErrEncode, n.quality)
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	// Buffered so an abandoned pipeline can finish without blocking forever.
	done := make(chan result, 1)
	go func() {
		img, err := n.run(src)
		done <- result{img: img, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			n.logger.Debug("Normalize(): failed", zap.String("name", src.Name), zap.Error(r.err))
			return nil, r.err
		}
		n.logger.Debug("Normalize(): done",
			zap.String("name", src.Name),
			zap.Int("in_bytes", len(src.Data)),
			zap.Int("out_bytes", len(r.img.Blob)),
			zap.Int("width", r.img.Width),
			zap.Int("height", r.img.Height))
		return r.img, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, n.timeout)
		}
		return nil, ctx.Err()
	}
}

func (n *Normalizer) run(src Source) (*Image, error) {
	if len(src.Data) == 0 {
		return nil, fmt.Errorf("%w: empty source", ErrRead)
	}
	if _, err := checkDecodable(src.Data); err != nil {
		return nil, err
	}

	decoded, _, err := n.decode(bytes.NewReader(src.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	b := decoded.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrDecode)
	}

	w, h := TargetSize(b.Dx(), b.Dy(), n.maxDimension)

	// JPEG has no alpha; transparent pixels land on white.
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(canvas, canvas.Bounds(), decoded, b.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(canvas, canvas.Bounds(), decoded, b, draw.Over, nil)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, canvas, &jpeg.Options{Quality: jpegQuality(n.quality)}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	blob := out.Bytes()
	return &Image{
		Blob:    blob,
		DataURI: DataURI("image/jpeg", blob),
		Width:   w,
		Height:  h,
	}, nil
}

// TargetSize fits width x height inside maxDim x maxDim without upscaling. The longer
// side becomes exactly maxDim and the shorter side is rounded to the nearest pixel.
func TargetSize(width, height, maxDim int) (int, int) {
	if width <= maxDim && height <= maxDim {
		return width, height
	}
	if width > height {
		h := int(math.Round(float64(height) * float64(maxDim) / float64(width)))
		return maxDim, atLeastOne(h)
	}
	w := int(math.Round(float64(width) * float64(maxDim) / float64(height)))
	return atLeastOne(w), maxDim
}

func atLeastOne(v int) int {
	if v < 1 {
		return 1
	}
	return v
}

func jpegQuality(q float64) int {
	v := int(math.Round(q * 100))
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}

func DataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
