package dialect

import (
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// CharsetReader converts documents declared in a legacy single-byte
// encoding to UTF-8. UTF-8 and unrecognised labels pass through unchanged.
func CharsetReader(label string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "iso-8859-1", "iso8859-1", "latin1", "latin-1":
		return charmap.ISO8859_1.NewDecoder().Reader(input), nil
	case "iso-8859-15", "iso8859-15", "latin9":
		return charmap.ISO8859_15.NewDecoder().Reader(input), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(input), nil
	}
	return input, nil
}
