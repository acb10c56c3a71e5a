package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// PrefixSeparator separates the message file name from the attachment name
const PrefixSeparator = " "

// OutputFilename returns the file name for an attachment, optionally
// prefixed with the base name of the message it came from.
// "report.msg" + "invoice.pdf" -> "report.msg invoice.pdf"
func OutputFilename(name, sourcePath string, prefix bool) string {
	if !prefix || sourcePath == "" {
		return name
	}
	return filepath.Base(sourcePath) + PrefixSeparator + name
}

// SuffixedFilename inserts a numeric suffix between stem and extension.
// "attachment.txt", 1 -> "attachment_1.txt"
func SuffixedFilename(name string, n int) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	if stem == "" {
		// dotfile such as ".bashrc": no extension to preserve
		return fmt.Sprintf("%s_%d", name, n)
	}
	return fmt.Sprintf("%s_%d%s", stem, n, ext)
}

// SanitizeFilename replaces characters that are unsafe in file paths and
// strips control characters. Names that would resolve to a directory
// reference become "unnamed".
func SanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	for _, c := range []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"} {
		name = strings.ReplaceAll(name, c, "_")
	}
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "unnamed"
	}
	return name
}
