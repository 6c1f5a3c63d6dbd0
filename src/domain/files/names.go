package files

import (
	"path"
	"strings"
)

// Basename reduces an untrusted, client-supplied name to its final path segment.
// Both '/' and '\' act as separators, so "c:\dir\image.gif" and "../image.gif"
// both become "image.gif". Names without a usable segment fail with ErrInvalidName.
func Basename(requested string) (string, error) {
	if strings.ContainsRune(requested, 0) {
		return "", ErrInvalidName
	}

	normalized := strings.ReplaceAll(requested, `\`, "/")
	name := path.Base(normalized)

	switch name {
	case "", ".", "..", "/":
		return "", ErrInvalidName
	}
	return name, nil
}

// IsBasename reports whether name is already a plain, usable basename
func IsBasename(name string) bool {
	clean, err := Basename(name)
	return err == nil && clean == name
}
