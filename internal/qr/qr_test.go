package qr

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stpnv0/ParkSpot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestPayload_OmitsEmptyOptionals(t *testing.T) {
	p, err := Payload(domain.SlipPayload{
		SlipNumber:    "PS-1-ABCDE",
		ParkingSpotID: "spot-1",
		SpotTitle:     "Mall P2",
		ValidUntil:    time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(p), &m))
	assert.Equal(t, "PS-1-ABCDE", m["slipNumber"])
	assert.Equal(t, "2026-03-01T22:00:00Z", m["validUntil"])
	assert.NotContains(t, m, "bookingId")
	assert.NotContains(t, m, "carNumber")
}

func TestPNG(t *testing.T) {
	png, err := PNG(`{"slipNumber":"PS-1-ABCDE"}`)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestDataURL(t *testing.T) {
	url, err := DataURL("PS-1-ABCDE")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, dataURLPrefix))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, dataURLPrefix))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
