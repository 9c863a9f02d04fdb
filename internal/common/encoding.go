package common

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ToUTF8 decodes ISO-8859-13 (Baltic) bytes into a UTF-8 string. Every byte has
// a mapping in ISO-8859-13, so decoding cannot fail.
func ToUTF8(content []byte) string {
	decoded, err := charmap.ISO8859_13.NewDecoder().Bytes(content)
	if err != nil {
		// single byte charmaps never report errors; keep the input as is
		return string(content)
	}
	return string(decoded)
}

// FromUTF8 encodes a UTF-8 string as ISO-8859-13. Characters without a mapping
// are reported as an error.
func FromUTF8(content string) ([]byte, error) {
	return charmap.ISO8859_13.NewEncoder().Bytes([]byte(content))
}

// Normalizer converts statement bytes to UTF-8 text.
//
// With PassthroughUTF8 unset every input is decoded as ISO-8859-13, which is
// what both bank exports use. With PassthroughUTF8 set, input that is valid
// UTF-8 and contains at least one multi-byte sequence is returned unchanged
// (minus a byte order mark), so files re-saved as UTF-8 are not decoded twice.
type Normalizer struct {
	PassthroughUTF8 bool
}

// Normalize returns content as UTF-8 text.
func (n Normalizer) Normalize(content []byte) string {
	if n.PassthroughUTF8 && isMultiByteUTF8(content) {
		return string(TrimBOM(content))
	}
	return ToUTF8(content)
}

func isMultiByteUTF8(content []byte) bool {
	if !utf8.Valid(content) {
		return false
	}
	for _, b := range content {
		if b >= utf8.RuneSelf {
			return true
		}
	}
	return false
}

// TrimBOM strips a leading UTF-8 byte order mark.
func TrimBOM(content []byte) []byte {
	return bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
}
