package services

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/kamal-hamza/msgx/internal/core/ports/mocks"
)

// testAttachment describes one attachment storage of a fake message.
// Empty names are left out of the storage entirely.
type testAttachment struct {
	short  string
	long   string
	data   []byte
	noData bool
}

// utf16LE encodes s the way .msg files store PT_UNICODE strings
func utf16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	buf := make([]byte, 2*len(units))
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2*i:], u)
	}
	return buf
}

// newMessage builds a container laid out like an Outlook message: a few
// message level streams followed by one __attach storage per attachment.
func newMessage(attachments ...testAttachment) *mocks.MockContainer {
	c := mocks.NewMockContainer()
	c.AddStorage("__properties_version1.0")
	c.AddStorage("__substg1.0_0037001F")
	c.AddStorage("__nameid_version1.0")

	for i, a := range attachments {
		storage := c.AddStorage(fmt.Sprintf("__attach_version1.0_#%08X", i))
		c.AddStream(storage, "__properties_version1.0", []byte{0, 0, 0, 0})
		c.AddStream(storage, "__substg1.0_37050003", []byte{1, 0, 0, 0})
		if a.short != "" {
			c.AddStream(storage, "__substg1.0_3704001F", utf16LE(a.short))
		}
		if a.long != "" {
			c.AddStream(storage, "__substg1.0_3707001F", utf16LE(a.long))
		}
		if !a.noData {
			c.AddStream(storage, "__substg1.0_37010102", a.data)
		}
	}
	return c
}
