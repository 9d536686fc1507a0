// Package qr renders the table QR codes guests scan to open the menu.
package qr

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"

	"github.com/yeqown/go-qrcode"
)

const ContentType = "image/jpeg"

// TableURL is the link encoded in a table's QR code:
// {base}/order/{restaurant_id}/{table_number}.
func TableURL(base, restaurantID, tableNumber string) (string, error) {
	if restaurantID == "" || tableNumber == "" {
		return "", errors.New("restaurant id and table number are required")
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q must be absolute", base)
	}
	return u.JoinPath("order", restaurantID, tableNumber).String(), nil
}

// Encode renders text as a JPEG QR code.
func Encode(text string) ([]byte, error) {
	code, err := qrcode.New(text)
	if err != nil {
		return nil, fmt.Errorf("build qr code: %w", err)
	}
	var buf bytes.Buffer
	if err := code.SaveTo(&buf); err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename suggested for a downloaded table code.
func Filename(tableNumber string) string {
	return "table-" + tableNumber + "-qr.jpeg"
}
