package service_test

import (
	"bytes"
	"image/png"
	"media-share-server/internal/service"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRService_EncodeProducesPNG(t *testing.T) {
	svc := service.NewQRService()

	image, err := svc.Encode("https://share.example.com/m/3f2a8c1d9e4b4f6a8c1d9e4b3f2a8c1d")

	require.NoError(t, err)
	require.NotEmpty(t, image)

	decoded, err := png.Decode(bytes.NewReader(image))
	require.NoError(t, err)
	assert.Equal(t, 256, decoded.Bounds().Dx())
	assert.Equal(t, 256, decoded.Bounds().Dy())
}

func TestQRService_EncodeIsDeterministic(t *testing.T) {
	svc := service.NewQRService()
	text := "https://share.example.com/m/3f2a8c1d9e4b4f6a8c1d9e4b3f2a8c1d"

	first, err := svc.Encode(text)
	require.NoError(t, err)

	second, err := svc.Encode(text)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQRService_EncodeTooLongPayload(t *testing.T) {
	svc := service.NewQRService()

	_, err := svc.Encode(strings.Repeat("a", 8000))

	assert.ErrorIs(t, err, service.ErrQRPayloadTooLarge)
}
