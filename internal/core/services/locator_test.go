package services

import (
	"testing"

	"github.com/kamal-hamza/msgx/internal/core/domain"
)

func TestLocateAttachments(t *testing.T) {
	nodes := []domain.DirectoryNode{
		{ID: 0, Name: "__properties_version1.0"},
		{ID: 1, Name: "__attach_version1.0_#00000000", Children: []uint32{2, 3}},
		{ID: 2, Name: "__substg1.0_37010102"},
		{ID: 3, Name: "__substg1.0_3707001F"},
		{ID: 4, Name: "__recip_version1.0_#00000000", Children: []uint32{5}},
		{ID: 5, Name: "__substg1.0_3001001F"},
		{ID: 6, Name: "__attach_version1.0_#00000001", Children: []uint32{7}},
		{ID: 7, Name: "__substg1.0_37010102"},
		{ID: 8, Name: "__attachment_lookalike"},
	}

	got := LocateAttachments(nodes)

	if len(got) != 3 {
		t.Fatalf("LocateAttachments() returned %d containers, want 3", len(got))
	}

	wantIDs := []uint32{1, 6, 8}
	for i, id := range wantIDs {
		if got[i].NodeID != id {
			t.Errorf("container[%d].NodeID = %d, want %d", i, got[i].NodeID, id)
		}
	}

	if len(got[0].Children) != 2 || got[0].Children[0] != 2 || got[0].Children[1] != 3 {
		t.Errorf("container[0].Children = %v, want [2 3]", got[0].Children)
	}
	if len(got[2].Children) != 0 {
		t.Errorf("look-alike storage should carry no children, got %v", got[2].Children)
	}
}

func TestLocateAttachments_None(t *testing.T) {
	nodes := []domain.DirectoryNode{
		{ID: 0, Name: "__properties_version1.0"},
		{ID: 1, Name: "__substg1.0_0037001F"},
	}

	if got := LocateAttachments(nodes); len(got) != 0 {
		t.Errorf("expected no containers, got %d", len(got))
	}
	if got := LocateAttachments(nil); len(got) != 0 {
		t.Errorf("expected no containers for empty tree, got %d", len(got))
	}
}

func TestLocateAttachments_CaseSensitive(t *testing.T) {
	nodes := []domain.DirectoryNode{
		{ID: 0, Name: "__ATTACH_version1.0_#00000000"},
	}

	if got := LocateAttachments(nodes); len(got) != 0 {
		t.Errorf("prefix match must be case sensitive, got %d containers", len(got))
	}
}
