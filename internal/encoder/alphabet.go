package encoder

import (
	"fmt"

	"github.com/migmedia/planturl/internal/domain"
)

// Alphabet is PlantUML's 64-symbol table, in index order.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-_"

var decodeTable = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = int8(i)
	}
	return t
}()

// EncodeAlphabet repacks data 6 bits at a time, most significant bit first.
// Each group of up to 3 bytes yields exactly 4 symbols; a short final group
// is padded with zero bits, so its unused positions read '0'.
func EncodeAlphabet(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	out := make([]byte, 0, 4*((len(data)+2)/3))
	for i := 0; i < len(data); i += 3 {
		var b1, b2 byte
		b0 := data[i]
		if i+1 < len(data) {
			b1 = data[i+1]
		}
		if i+2 < len(data) {
			b2 = data[i+2]
		}
		out = append(out,
			Alphabet[b0>>2],
			Alphabet[(b0&0x03)<<4|b1>>4],
			Alphabet[(b1&0x0f)<<2|b2>>6],
			Alphabet[b2&0x3f],
		)
	}
	return string(out)
}

// DecodeAlphabet maps every 4 symbols back to 3 bytes. Padding is not
// stripped: a stream encoded from n bytes decodes to n rounded up to a
// multiple of 3.
func DecodeAlphabet(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, invalidInput("encoder.decode",
			fmt.Errorf("%w: length %d is not a multiple of 4", domain.ErrInvalidEncoding, len(s)))
	}

	out := make([]byte, 0, len(s)/4*3)
	for i := 0; i < len(s); i += 4 {
		var n uint32
		for j := i; j < i+4; j++ {
			v := decodeTable[s[j]]
			if v < 0 {
				return nil, invalidInput("encoder.decode",
					fmt.Errorf("%w: character %q at offset %d", domain.ErrInvalidEncoding, s[j], j))
			}
			n = n<<6 | uint32(v)
		}
		out = append(out, byte(n>>16), byte(n>>8), byte(n))
	}
	return out, nil
}

func invalidInput(op string, err error) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidInput,
		Err:  err,
	}
}
