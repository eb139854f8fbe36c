package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// textDecoder is one candidate in the ordered decoding fallback chain.
type textDecoder struct {
	name   string
	decode func(data []byte) (string, error)
}

// decoders are tried in order; the first one that decodes without error
// wins. If every candidate fails, lossyDecode takes over.
var decoders = []textDecoder{
	{name: "utf-8", decode: decodeUTF8},
	{name: "latin-1", decode: charmapDecoder(charmap.ISO8859_1)},
	{name: "cp1252", decode: charmapDecoder(charmap.Windows1252)},
}

func decodeUTF8(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", fmt.Errorf("invalid utf-8 byte sequence")
	}
	return string(data), nil
}

func charmapDecoder(enc encoding.Encoding) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

// lossyDecode never fails: undecodable byte sequences become U+FFFD.
func lossyDecode(data []byte) string {
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}

func decodeWith(chain []textDecoder, data []byte) string {
	for _, d := range chain {
		if text, err := d.decode(data); err == nil {
			return text
		}
	}
	return lossyDecode(data)
}

// readFileText loads a selected file and returns its text content. Decoding
// cannot fail thanks to the lossy last resort; only the read itself can.
func readFileText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return decodeWith(decoders, data), nil
}
