package services

import (
	"encoding/binary"
	"fmt"
	"iter"
	"unicode/utf16"

	"github.com/kamal-hamza/msgx/internal/core/domain"
	"github.com/kamal-hamza/msgx/internal/core/ports"
)

// AssembleAttachment reads and decodes the resolved properties of one
// attachment. Filenames are decoded first so that a missing payload can be
// reported under the attachment's name.
func AssembleAttachment(c ports.Container, index int, props PropertyMap) (*domain.Attachment, error) {
	att := &domain.Attachment{Index: index}

	if node, ok := props[domain.PropAttachFilename]; ok {
		name, err := readString(c, node)
		if err != nil {
			return nil, domain.NewAttachmentError(index, "", "", domain.PropAttachFilename, err)
		}
		att.ShortFilename = name
	}

	if node, ok := props[domain.PropAttachLongFilename]; ok {
		name, err := readString(c, node)
		if err != nil {
			return nil, domain.NewAttachmentError(index, "", att.ShortFilename, domain.PropAttachLongFilename, err)
		}
		att.LongFilename = name
	}

	node, ok := props[domain.PropAttachData]
	if !ok {
		return nil, domain.NewAttachmentError(index, att.LongFilename, att.ShortFilename, "", domain.ErrMissingPayload)
	}
	data, err := c.ReadStream(node.ID)
	if err != nil {
		return nil, domain.NewAttachmentError(index, att.LongFilename, att.ShortFilename, domain.PropAttachData,
			fmt.Errorf("failed to read stream %q: %w", node.Name, err))
	}
	att.Data = data

	return att, nil
}

// Attachments yields the attachments of a container one at a time. Each
// attachment is read only when the consumer asks for it; stopping the
// iteration stops all further reads.
func Attachments(c ports.Container, extractor *domain.PropertyExtractor) iter.Seq2[*domain.Attachment, error] {
	return func(yield func(*domain.Attachment, error) bool) {
		nodes := c.Nodes()
		index := domain.NewNodeIndex(nodes)

		for i, container := range LocateAttachments(nodes) {
			props := ResolveProperties(index, container, extractor)
			att, err := AssembleAttachment(c, i, props)
			if !yield(att, err) {
				return
			}
		}
	}
}

func readString(c ports.Container, node domain.DirectoryNode) (string, error) {
	raw, err := c.ReadStream(node.ID)
	if err != nil {
		return "", fmt.Errorf("failed to read stream %q: %w", node.Name, err)
	}
	return DecodeUTF16LE(raw)
}

// DecodeUTF16LE decodes little-endian UTF-16 text. A trailing odd byte is
// dropped. Unpaired surrogates are an error rather than being replaced.
func DecodeUTF16LE(raw []byte) (string, error) {
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}

	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u >= 0xD800 && u <= 0xDBFF:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] > 0xDFFF {
				return "", fmt.Errorf("%w: unpaired high surrogate at code unit %d", domain.ErrInvalidUTF16, i)
			}
			i++
		case u >= 0xDC00 && u <= 0xDFFF:
			return "", fmt.Errorf("%w: unpaired low surrogate at code unit %d", domain.ErrInvalidUTF16, i)
		}
	}

	return string(utf16.Decode(units)), nil
}
