package services

import (
	"github.com/kamal-hamza/msgx/internal/core/domain"
)

// PropertyMap maps the property codes of one attachment to their stream nodes
type PropertyMap map[domain.PropertyCode]domain.DirectoryNode

// ResolveProperties maps the children of an attachment container to the
// property codes their names carry. Children without a 37xx code are
// ignored. If two children carry the same code, the one listed last wins.
func ResolveProperties(index domain.NodeIndex, container domain.AttachmentContainer, extractor *domain.PropertyExtractor) PropertyMap {
	props := make(PropertyMap)
	for _, id := range container.Children {
		node, ok := index[id]
		if !ok {
			continue
		}
		code, ok := extractor.Extract(node.Name)
		if !ok {
			continue
		}
		props[code] = node
	}
	return props
}
