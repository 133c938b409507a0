package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngMagic is the fixed 8-byte PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestEncode_ProducesPNG(t *testing.T) {
	png, err := Encode("http://localhost:8080/checkin?event_id=1")
	require.NoError(t, err)
	require.Greater(t, len(png), len(pngMagic))
	assert.Equal(t, pngMagic, png[:len(pngMagic)])
}

func TestCheckinURL(t *testing.T) {
	assert.Equal(t,
		"http://localhost:8080/checkin?event_id=7",
		CheckinURL("http://localhost:8080", 7),
	)
	assert.Equal(t,
		"https://events.example.com/checkin?event_id=123",
		CheckinURL("https://events.example.com", 123),
	)
}
