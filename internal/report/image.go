package report

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// Image data-URL validation errors.
var (
	// ErrNotDataURL indicates the image payload is not a base64 data URL.
	ErrNotDataURL = errors.New("image must be a base64 data URL")

	// ErrNotImage indicates the payload decoded but is not an image.
	ErrNotImage = errors.New("payload is not an image")
)

// sniffLen bounds how much of the image is decoded for MIME sniffing.
// http.DetectContentType looks at most at the first 512 bytes.
const sniffLen = 512

// ValidateImageDataURL checks that s is a well-formed base64 image data URL
// ("data:image/...;base64,...."). Only the declared media type and a sniff
// of the decoded prefix are verified; image quality or dimensions are not.
func ValidateImageDataURL(s string) error {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "data:") {
		return ErrNotDataURL
	}
	comma := strings.IndexByte(s, ',')
	if comma < 0 {
		return ErrNotDataURL
	}
	meta, payload := s[len("data:"):comma], s[comma+1:]
	if !strings.HasSuffix(meta, ";base64") {
		return ErrNotDataURL
	}
	declared := strings.TrimSuffix(meta, ";base64")
	if !strings.HasPrefix(declared, "image/") {
		return ErrNotImage
	}
	if payload == "" {
		return ErrNotDataURL
	}

	// Decode just enough of the payload to sniff the real content type.
	n := len(payload)
	if max := base64.StdEncoding.EncodedLen(sniffLen); n > max {
		// Keep a multiple of 4 so the prefix remains valid base64.
		n = max - max%4
	}
	head, err := base64.StdEncoding.DecodeString(payload[:n])
	if err != nil {
		return ErrNotDataURL
	}

	// Sniffing is advisory: short or exotic payloads come back as
	// application/octet-stream, which proves nothing either way. Only a
	// positive identification as non-image content is rejected. SVG sniffs
	// as text/xml and is accepted when declared.
	sniffed := http.DetectContentType(head)
	switch {
	case strings.HasPrefix(sniffed, "image/"):
		return nil
	case sniffed == "application/octet-stream":
		return nil
	case declared == "image/svg+xml":
		return nil
	default:
		return ErrNotImage
	}
}
