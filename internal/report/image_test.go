package report

import (
	"encoding/base64"
	"errors"
	"testing"
)

// pngDataURL builds a data URL around a minimal PNG header so the sniffer
// positively identifies the payload.
func pngDataURL() string {
	head := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	head = append(head, make([]byte, 64)...)
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(head)
}

func TestValidateImageDataURL_PNG(t *testing.T) {
	if err := ValidateImageDataURL(pngDataURL()); err != nil {
		t.Fatalf("ValidateImageDataURL: %v", err)
	}
}

func TestValidateImageDataURL_ShortOpaquePayloadAccepted(t *testing.T) {
	// Tiny payloads sniff as octet-stream; that is not proof of non-image
	// content, so they pass format validation.
	if err := ValidateImageDataURL("data:image/png;base64,AAAA"); err != nil {
		t.Fatalf("ValidateImageDataURL: %v", err)
	}
}

func TestValidateImageDataURL_SVGDeclared(t *testing.T) {
	svg := base64.StdEncoding.EncodeToString([]byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"/>`))
	if err := ValidateImageDataURL("data:image/svg+xml;base64," + svg); err != nil {
		t.Fatalf("ValidateImageDataURL: %v", err)
	}
}

func TestValidateImageDataURL_Rejections(t *testing.T) {
	html := base64.StdEncoding.EncodeToString([]byte("<!DOCTYPE html><html><body>hi</body></html>"))

	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrNotDataURL},
		{"no data prefix", "image/png;base64,AAAA", ErrNotDataURL},
		{"no comma", "data:image/png;base64", ErrNotDataURL},
		{"not base64 encoded", "data:image/png,rawbytes", ErrNotDataURL},
		{"empty payload", "data:image/png;base64,", ErrNotDataURL},
		{"invalid base64", "data:image/png;base64,!!!!", ErrNotDataURL},
		{"non-image media type", "data:text/plain;base64,AAAA", ErrNotImage},
		{"html payload declared as image", "data:image/png;base64," + html, ErrNotImage},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := ValidateImageDataURL(c.in); !errors.Is(err, c.want) {
				t.Fatalf("got %v, want %v", err, c.want)
			}
		})
	}
}
