package encoder

import (
	"bytes"
	"compress/flate"
	"io"
)

// compress/flate flushes everything written so far as a single block as long
// as fewer than 1<<14 tokens are pending; a token never covers less than one
// input byte.
const singleBlockLimit = 1 << 14

var (
	// Empty stored block emitted by (*flate.Writer).Flush.
	syncMarker = []byte{0x00, 0x00, 0xff, 0xff}

	// BFINAL=1, BTYPE=01 (fixed Huffman), end-of-block.
	finalEmptyBlock = []byte{0x03, 0x00}
)

// Compress returns the raw deflate stream of text at maximum compression.
//
// flate.Writer.Close always terminates the stream with an extra empty stored
// block. PlantUML servers accept that, but the URL gets longer for nothing,
// so the stream is flushed instead and its last block is marked final.
func Compress(text string) []byte {
	if text == "" {
		return append([]byte(nil), finalEmptyBlock...)
	}

	var b bytes.Buffer
	// Writing into a bytes.Buffer cannot fail and BestCompression is a valid level.
	fw, _ := flate.NewWriter(&b, flate.BestCompression)
	_, _ = io.WriteString(fw, text)
	_ = fw.Flush()

	out := b.Bytes()
	if len(text) < singleBlockLimit {
		out = bytes.TrimSuffix(out, syncMarker)
		// The only block starts at bit 0; bit 0 is BFINAL.
		out[0] |= 0x01
		return out
	}
	return append(out, finalEmptyBlock...)
}

// Inflate reverses Compress. Data after the final block is ignored, which
// covers the zero padding DecodeAlphabet leaves behind.
func Inflate(data []byte) (string, error) {
	fr := flate.NewReader(bytes.NewReader(data))
	defer fr.Close()

	var b bytes.Buffer
	if _, err := io.Copy(&b, fr); err != nil {
		return "", invalidInput("encoder.inflate", err)
	}
	return b.String(), nil
}
