// Package isbn extracts ISBN identifiers from manuscript filenames.
// Batches are conventionally named by ISBN, e.g. 9788535914849.pdf.
package isbn

import (
	"path/filepath"
	"strings"
)

// normalize strips the extension and keeps only digits plus the X check
// digit.
func normalize(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	var sb strings.Builder
	for _, r := range base {
		if (r >= '0' && r <= '9') || r == 'X' || r == 'x' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// IsISBNName reports whether the filename looks like an ISBN-10 or
// ISBN-13, ignoring separators.
func IsISBNName(name string) bool {
	only := normalize(name)
	switch len(only) {
	case 13:
		return strings.IndexFunc(only, notDigit) == -1
	case 10:
		head, check := only[:9], only[9]
		if strings.IndexFunc(head, notDigit) != -1 {
			return false
		}
		return (check >= '0' && check <= '9') || check == 'X' || check == 'x'
	default:
		return false
	}
}

// FromFilename returns the ISBN detected in the filename, or the bare
// filename (without extension) when no digits are present.
func FromFilename(name string) string {
	if only := normalize(name); only != "" {
		return only
	}
	return strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}
