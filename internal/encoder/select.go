package encoder

import (
	"strings"

	"github.com/migmedia/planturl/internal/domain"
)

// Select encodes already normalized text with mode.
//
// ModeBest keeps the deflate form only when it is strictly shorter than the
// hex form would be (2 digits per byte plus the prefix).
func Select(normalized string, mode domain.Mode) string {
	switch mode {
	case domain.ModeHex:
		return EncodeHex(normalized)
	case domain.ModeBest:
		deflated := EncodeAlphabet(Compress(normalized))
		if len(deflated) >= len(normalized)*2+len(HexPrefix) {
			return EncodeHex(normalized)
		}
		return deflated
	default:
		return EncodeAlphabet(Compress(normalized))
	}
}

// Encode normalizes raw diagram text and encodes it with mode.
func Encode(raw string, mode domain.Mode) string {
	return Select(Normalize(raw), mode)
}

// Decode accepts either encoding and returns the normalized diagram text.
func Decode(encoded string) (string, error) {
	encoded = strings.TrimSpace(encoded)
	if strings.HasPrefix(encoded, HexPrefix) {
		return DecodeHex(encoded)
	}

	data, err := DecodeAlphabet(encoded)
	if err != nil {
		return "", err
	}
	return Inflate(data)
}
