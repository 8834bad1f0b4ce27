package qr

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/skip2/go-qrcode"
	"github.com/stpnv0/ParkSpot/internal/domain"
)

const (
	pngSize       = 256
	dataURLPrefix = "data:image/png;base64,"
)

// Payload serializes what is scanned at the gate.
func Payload(p domain.SlipPayload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("marshal slip payload: %w", err)
	}
	return string(data), nil
}

func PNG(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, pngSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}

func DataURL(content string) (string, error) {
	png, err := PNG(content)
	if err != nil {
		return "", err
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
