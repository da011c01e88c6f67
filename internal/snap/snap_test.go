package snap

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"greenmason/internal/imagenorm"
	"greenmason/internal/models"
	"greenmason/internal/session"
)

type fakeClassifier struct {
	err      error
	filename string
	ctype    string
	data     []byte
}

func (f *fakeClassifier) ClassifyUpload(_ context.Context, filename, contentType string, data []byte) (*models.ClassificationResult, error) {
	f.filename, f.ctype, f.data = filename, contentType, data
	if f.err != nil {
		return nil, f.err
	}
	return &models.ClassificationResult{Category: models.CategoryRecyclable, ItemName: "soda can", PointsEarned: 15}, nil
}

type fakeRecorder struct {
	err   error
	calls []string
}

func (f *fakeRecorder) RecordAction(_ context.Context, action string, points int, description string) (*models.ScoreResult, error) {
	f.calls = append(f.calls, action+"|"+description)
	if f.err != nil {
		return nil, f.err
	}
	return &models.ScoreResult{Action: action, PointsAdded: points, NewTotal: points}, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.Black)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepare_Normalizes(t *testing.T) {
	svc := NewService(imagenorm.New(imagenorm.WithMaxDimension(100)), &fakeClassifier{}, &fakeRecorder{}, zaptest.NewLogger(t))

	up := svc.Prepare(context.Background(), imagenorm.Source{Name: "bottle.png", MediaType: "image/png", Data: pngBytes(t, 400, 200)})

	assert.True(t, up.Normalized)
	assert.NoError(t, up.FallbackErr)
	assert.Equal(t, "bottle.jpg", up.Filename)
	assert.Equal(t, "image/jpeg", up.ContentType)
	assert.Equal(t, 100, up.Width)
	assert.Equal(t, 50, up.Height)
	assert.Equal(t, "image/jpeg", imagenorm.DetectFormat(up.Data))
}

func TestCorruptFileIsUploadedAsOriginal(t *testing.T) {
	classifier := &fakeClassifier{}
	recorder := &fakeRecorder{}
	svc := NewService(imagenorm.New(), classifier, recorder, zaptest.NewLogger(t))

	corrupt := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01}
	up := svc.Prepare(context.Background(), imagenorm.Source{Name: "IMG_1234.jpg", MediaType: "image/jpeg", Data: corrupt})

	assert.False(t, up.Normalized)
	assert.ErrorIs(t, up.FallbackErr, imagenorm.ErrDecode)
	assert.Equal(t, "IMG_1234.jpg", up.Filename)
	assert.Equal(t, "image/jpeg", up.ContentType)

	_, err := svc.Analyze(context.Background(), up)
	require.NoError(t, err)
	assert.Equal(t, corrupt, classifier.data, "original bytes reach the network")
	assert.Equal(t, "IMG_1234.jpg", classifier.filename)
}

func TestPrepare_FallbackDetectsMissingMediaType(t *testing.T) {
	svc := NewService(imagenorm.New(imagenorm.WithQuality(2)), &fakeClassifier{}, &fakeRecorder{}, nil)

	up := svc.Prepare(context.Background(), imagenorm.Source{Name: "x.png", Data: pngBytes(t, 4, 4)})
	assert.False(t, up.Normalized)
	assert.ErrorIs(t, up.FallbackErr, imagenorm.ErrEncode)
	assert.Equal(t, "image/png", up.ContentType)
}

func TestAnalyze_RecordsSortAction(t *testing.T) {
	recorder := &fakeRecorder{}
	svc := NewService(imagenorm.New(), &fakeClassifier{}, recorder, zaptest.NewLogger(t))

	res, err := svc.Analyze(context.Background(), Upload{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte{1}})
	require.NoError(t, err)
	assert.Equal(t, "soda can", res.Classification.ItemName)
	require.NotNil(t, res.Score)
	assert.Equal(t, 15, res.Score.PointsAdded)
	assert.Equal(t, []string{"sort|Sorted: soda can (recyclable)"}, recorder.calls)
}

func TestAnalyze_RecordFailureIsSwallowed(t *testing.T) {
	recorder := &fakeRecorder{err: session.ErrAnonymous}
	svc := NewService(imagenorm.New(), &fakeClassifier{}, recorder, zaptest.NewLogger(t))

	res, err := svc.Analyze(context.Background(), Upload{Filename: "a.jpg", Data: []byte{1}})
	require.NoError(t, err)
	assert.Nil(t, res.Score)
	assert.ErrorIs(t, res.RecordErr, session.ErrAnonymous)
	assert.Equal(t, "soda can", res.Classification.ItemName)
}

func TestAnalyze_ClassificationFailure(t *testing.T) {
	boom := errors.New("server returned 500")
	recorder := &fakeRecorder{}
	svc := NewService(imagenorm.New(), &fakeClassifier{err: boom}, recorder, zaptest.NewLogger(t))

	_, err := svc.Analyze(context.Background(), Upload{Filename: "a.jpg", Data: []byte{1}})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, recorder.calls)
}

func TestJpegName(t *testing.T) {
	assert.Equal(t, "photo.jpg", jpegName(""))
	assert.Equal(t, "IMG_0001.jpg", jpegName("IMG_0001.HEIC"))
	assert.Equal(t, "scan.jpg", jpegName("scan"))
}
