package domain

import "regexp"

// PropertyCode is the 4 digit MAPI property id carried in a stream name,
// e.g. "3701" for "__substg1.0_37010102".
type PropertyCode string

// Attachment property codes understood by msgx
const (
	PropAttachData         PropertyCode = "3701" // PR_ATTACH_DATA_BIN
	PropAttachFilename     PropertyCode = "3704" // PR_ATTACH_FILENAME (8.3)
	PropAttachLongFilename PropertyCode = "3707" // PR_ATTACH_LONG_FILENAME
)

const propertyNamePattern = `^__.*\.0_(37\d\d).*`

// PropertyExtractor derives attachment property codes from directory entry names.
// It is immutable after construction and safe to share.
type PropertyExtractor struct {
	re *regexp.Regexp
}

// NewPropertyExtractor compiles the property name pattern
func NewPropertyExtractor() *PropertyExtractor {
	return &PropertyExtractor{re: regexp.MustCompile(propertyNamePattern)}
}

// Extract returns the property code encoded in name, if any.
// Only the first match is considered.
func (p *PropertyExtractor) Extract(name string) (PropertyCode, bool) {
	m := p.re.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return PropertyCode(m[1]), true
}
