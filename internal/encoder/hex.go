package encoder

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/migmedia/planturl/internal/domain"
)

// HexPrefix marks the uncompressed hex encoding.
const HexPrefix = "~h"

// EncodeHex writes HexPrefix followed by two lowercase hex digits per byte of text.
func EncodeHex(text string) string {
	return HexPrefix + hex.EncodeToString([]byte(text))
}

func DecodeHex(s string) (string, error) {
	if !strings.HasPrefix(s, HexPrefix) {
		return "", invalidInput("encoder.decodehex",
			fmt.Errorf("%w: missing %q prefix", domain.ErrInvalidEncoding, HexPrefix))
	}

	b, err := hex.DecodeString(strings.TrimPrefix(s, HexPrefix))
	if err != nil {
		return "", invalidInput("encoder.decodehex", fmt.Errorf("%w: %v", domain.ErrInvalidEncoding, err))
	}
	return string(b), nil
}
