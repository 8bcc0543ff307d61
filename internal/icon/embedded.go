package icon

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/url"
	"strings"
)

// embeddedPrefix marks identifiers that carry their own image bytes.
const embeddedPrefix = "data:"

// ErrMalformedIdentifier is returned when an embedded-data identifier
// cannot be parsed or decoded.
var ErrMalformedIdentifier = errors.New("malformed embedded image identifier")

// IsEmbedded reports whether identifier is a self-contained data URI.
// The prefix check is case-insensitive.
func IsEmbedded(identifier string) bool {
	return len(identifier) >= len(embeddedPrefix) &&
		strings.EqualFold(identifier[:len(embeddedPrefix)], embeddedPrefix)
}

// DecodeEmbedded decodes a data-URI identifier
// (data:[mediatype][;base64],payload) into an image.
func DecodeEmbedded(identifier string) (image.Image, error) {
	if !IsEmbedded(identifier) {
		return nil, fmt.Errorf("%w: missing data prefix", ErrMalformedIdentifier)
	}

	comma := strings.IndexByte(identifier, ',')
	if comma < 0 {
		return nil, fmt.Errorf("%w: missing payload separator", ErrMalformedIdentifier)
	}

	meta := identifier[len(embeddedPrefix):comma]
	payload := identifier[comma+1:]

	var raw []byte
	if strings.HasSuffix(strings.ToLower(meta), ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedIdentifier, err)
		}
		raw = decoded
	} else {
		unescaped, err := url.PathUnescape(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedIdentifier, err)
		}
		raw = []byte(unescaped)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedIdentifier, err)
	}
	return img, nil
}
