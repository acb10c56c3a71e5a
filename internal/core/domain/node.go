package domain

// DirectoryNode is a single entry of a compound-file directory tree
// (a storage or a stream). Nodes are produced by the container adapter and
// are read-only for the rest of the program.
type DirectoryNode struct {
	ID       uint32
	Name     string
	Children []uint32
}

// NodeIndex maps node identifiers to nodes. It is built once per input file
// and never mutated afterwards.
type NodeIndex map[uint32]DirectoryNode

// NewNodeIndex builds the id -> node lookup for a directory listing
func NewNodeIndex(nodes []DirectoryNode) NodeIndex {
	index := make(NodeIndex, len(nodes))
	for _, n := range nodes {
		index[n.ID] = n
	}
	return index
}

// AttachmentStoragePrefix is the name prefix of the storages holding one attachment each
const AttachmentStoragePrefix = "__attach"

// AttachmentContainer groups the children of one attachment storage.
type AttachmentContainer struct {
	NodeID   uint32
	Name     string
	Children []uint32
}
