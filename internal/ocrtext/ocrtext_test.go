package ocrtext

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		opts Options
		want string
	}{
		{
			name: "plain utf-8",
			data: []byte("Wochenübersicht 01.09.25 bis 07.09.25\n"),
			want: "Wochenübersicht 01.09.25 bis 07.09.25\n",
		},
		{
			name: "utf-8 bom and crlf",
			data: []byte("\xef\xbb\xbfMontag 01.09.25\r\nKurs 217\rFrei"),
			want: "Montag 01.09.25\nKurs 217\nFrei",
		},
		{
			name: "windows-1252",
			data: []byte("Wochen\xfcbersicht"),
			opts: Options{Encoding: "Windows-1252"},
			want: "Wochenübersicht",
		},
		{
			name: "decomposed umlaut composed to nfc",
			data: []byte("Wochenübersicht"),
			want: "Wochenübersicht",
		},
		{
			name: "mojibake repaired when enabled",
			data: []byte("Wochen√ºbersicht 01.09.25 bis 07.09.25"),
			opts: Options{RepairMojibake: true},
			want: "Wochenübersicht 01.09.25 bis 07.09.25",
		},
		{
			name: "mojibake kept when disabled",
			data: []byte("Wochen√ºbersicht"),
			want: "Wochen√ºbersicht",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeUnknownEncoding(t *testing.T) {
	_, err := Decode([]byte("x"), Options{Encoding: "ebcdic"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestRepairMojibakeLeavesGenuineText(t *testing.T) {
	// "√" that is not followed by a valid UTF-8 continuation stays as is.
	in := "Wurzel √ Zeichen"
	assert.Equal(t, in, RepairMojibake(in))
	assert.Equal(t, "Frei", RepairMojibake("Frei"))

	// One rune outside MacRoman makes the whole repair give up.
	mixed := "Wochen√ºbersicht → Seite 1"
	assert.Equal(t, mixed, RepairMojibake(mixed))
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scan.txt")
	latin, err := charmap.ISO8859_1.NewEncoder().String("Mittwoch 03.09.25\r\nFrei")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(latin), 0o644))

	got, err := Read(path, Options{Encoding: "latin1"})
	require.NoError(t, err)
	assert.Equal(t, "Mittwoch 03.09.25\nFrei", got)

	_, err = Read(filepath.Join(dir, "missing.txt"), Options{})
	assert.Error(t, err)
}
