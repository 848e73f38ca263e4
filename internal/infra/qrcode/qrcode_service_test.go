package qrcode

import (
	"testing"

	"blog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShareQR(t *testing.T) {
	svc := New(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "M"}})

	png, err := svc.GenerateShareQR("https://blog.example.com/posts/hello-world")
	require.NoError(t, err)
	require.NotEmpty(t, png)

	// PNG magic bytes.
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestGenerateShareQR_DefaultsWhenUnconfigured(t *testing.T) {
	svc := New(&config.Config{})

	png, err := svc.GenerateShareQR("https://blog.example.com/posts/hello-world")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
