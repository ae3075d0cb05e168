// Package ocrtext loads the text produced by the upstream OCR stage and
// normalizes it so the roster patterns see a single, predictable form:
// UTF-8, NFC, "\n" line endings.
package ocrtext

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/unicode/norm"

	appLog "dienstplan/internal/log"
)

// ErrUnknownEncoding is returned for an Options.Encoding that is not supported.
var ErrUnknownEncoding = errors.New("unknown text encoding")

// Options controls decoding of the OCR file.
type Options struct {
	// Encoding is the source character set; empty means UTF-8.
	Encoding string
	// RepairMojibake reverses UTF-8 that was decoded as MacRoman once
	// already (ü shows up as "√º").
	RepairMojibake bool
}

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"utf8":         unicode.UTF8BOM,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"macintosh":    charmap.Macintosh,
	"macroman":     charmap.Macintosh,
}

func lookup(name string) (encoding.Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "utf-8"
	}
	enc, ok := encodings[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return enc, nil
}

// Read loads the whole file at path and decodes it with Decode.
func Read(path string, opts Options) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read ocr text: %w", err)
	}
	text, err := Decode(data, opts)
	if err != nil {
		return "", err
	}
	appLog.Debug("ocr text loaded", "path", path, "bytes", len(data), "encoding", opts.Encoding)
	return text, nil
}

// Decode converts raw OCR output into normalized UTF-8 text.
func Decode(data []byte, opts Options) (string, error) {
	enc, err := lookup(opts.Encoding)
	if err != nil {
		return "", err
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", opts.Encoding, err)
	}
	text := string(decoded)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if opts.RepairMojibake {
		text = RepairMojibake(text)
	}

	return norm.NFC.String(text), nil
}

// RepairMojibake undoes a UTF-8 → MacRoman misread. Text without the
// telltale "√" lead byte, or text that does not round-trip cleanly, is
// returned unchanged.
func RepairMojibake(s string) string {
	if !strings.Contains(s, "√") {
		return s
	}
	raw, err := charmap.Macintosh.NewEncoder().String(s)
	if err != nil || !utf8.ValidString(raw) {
		return s
	}
	appLog.Debug("repaired MacRoman mojibake in ocr text")
	return raw
}
