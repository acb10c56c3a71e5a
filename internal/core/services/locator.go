package services

import (
	"strings"

	"github.com/kamal-hamza/msgx/internal/core/domain"
)

// LocateAttachments returns one container per attachment storage, in the
// order the directory tree lists them. Nothing beyond the name prefix is
// checked; a storage without usable properties fails later, in assembly.
func LocateAttachments(nodes []domain.DirectoryNode) []domain.AttachmentContainer {
	var containers []domain.AttachmentContainer
	for _, node := range nodes {
		if !strings.HasPrefix(node.Name, domain.AttachmentStoragePrefix) {
			continue
		}
		containers = append(containers, domain.AttachmentContainer{
			NodeID:   node.ID,
			Name:     node.Name,
			Children: node.Children,
		})
	}
	return containers
}
