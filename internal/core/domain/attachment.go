package domain

import "fmt"

// Attachment is one file embedded in a message, ready to be written out.
// An empty filename field means the property was absent (or empty).
type Attachment struct {
	Index         int    // Position in directory traversal order
	ShortFilename string // PR_ATTACH_FILENAME (3704)
	LongFilename  string // PR_ATTACH_LONG_FILENAME (3707)
	Data          []byte // PR_ATTACH_DATA_BIN (3701)
}

// Filename returns the name the attachment should be written under,
// preferring the long filename over the short one.
func (a *Attachment) Filename() (string, error) {
	if a.LongFilename != "" {
		return a.LongFilename, nil
	}
	if a.ShortFilename != "" {
		return a.ShortFilename, nil
	}
	return "", ErrNoFilename
}

// DisplayName returns a name suitable for diagnostics, falling back to a
// positional placeholder when the attachment carries no filename.
func (a *Attachment) DisplayName() string {
	return displayName(a.Index, a.LongFilename, a.ShortFilename)
}

func displayName(index int, long, short string) string {
	switch {
	case long != "":
		return long
	case short != "":
		return short
	default:
		return fmt.Sprintf("attachment #%d", index)
	}
}
