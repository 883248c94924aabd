package qrcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUPIQR_ProducesPNG(t *testing.T) {
	svc := NewQRCodeService("store@upi", "Jewellery Boutique", 128, "M")

	png, err := svc.GenerateUPIQR(334, "TRX45678901")
	require.NoError(t, err)

	// PNG signature bytes.
	assert.True(t, len(png) > 8)
	assert.Equal(t, "\x89PNG\r\n\x1a\n", string(png[:8]))
}

func TestUPIIntent_Encoding(t *testing.T) {
	svc := NewQRCodeService("store@upi", "Jewellery Boutique", 128, "M").(*qrcodeService)

	intent := svc.upiIntent(334.5, "TRX1")

	assert.True(t, strings.HasPrefix(intent, "upi://pay?"))
	assert.Contains(t, intent, "pa=store%40upi")
	assert.Contains(t, intent, "am=334.50")
	assert.Contains(t, intent, "cu=INR")
	assert.Contains(t, intent, "tr=TRX1")
}

func TestNewQRCodeService_UnknownLevelDefaultsToMedium(t *testing.T) {
	svc := NewQRCodeService("store@upi", "Boutique", 64, "X").(*qrcodeService)

	png, err := svc.GenerateUPIQR(10, "ref")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
