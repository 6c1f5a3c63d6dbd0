package files

import (
	"encoding/base64"
	"strings"
	"unicode"
)

// EncodeEnvelope base64-encodes a record for JSON transport
func EncodeEnvelope(record FileRecord) Envelope {
	return Envelope{
		Content:  base64.StdEncoding.EncodeToString(record.Content),
		Filename: record.Name,
	}
}

// DecodeContent reverses EncodeEnvelope's content encoding.
// Whitespace inside the encoded text is ignored.
func DecodeContent(encoded string) ([]byte, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, encoded)

	data, err := base64.StdEncoding.DecodeString(compact)
	if err != nil {
		return nil, ErrInvalidFormat
	}
	return data, nil
}
