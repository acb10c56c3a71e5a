package services

import (
	"context"
	"errors"
	"testing"

	"github.com/kamal-hamza/msgx/internal/core/domain"
	"github.com/kamal-hamza/msgx/internal/core/ports/mocks"
)

func TestListService_Execute(t *testing.T) {
	c := newMessage(
		testAttachment{short: "REPORT~1.PDF", long: "Quarterly Report.pdf", data: []byte("12345")},
		testAttachment{long: "broken.txt", noData: true},
		testAttachment{data: []byte("nameless")},
	)
	opener := mocks.NewMockOpener()
	opener.Register("a.msg", c)
	svc := NewListService(opener, domain.NewPropertyExtractor())

	resp, err := svc.Execute(context.Background(), ListRequest{Path: "a.msg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Total != 3 {
		t.Fatalf("Total = %d, want 3", resp.Total)
	}
	if resp.Failed != 2 {
		t.Errorf("Failed = %d, want 2", resp.Failed)
	}

	first := resp.Attachments[0]
	if first.Name != "Quarterly Report.pdf" || first.ShortFilename != "REPORT~1.PDF" || first.Size != 5 {
		t.Errorf("unexpected first summary: %+v", first)
	}
	if first.Err != nil {
		t.Errorf("first attachment should list cleanly: %v", first.Err)
	}

	second := resp.Attachments[1]
	if second.Index != 1 || second.Name != "broken.txt" || !errors.Is(second.Err, domain.ErrMissingPayload) {
		t.Errorf("unexpected second summary: %+v", second)
	}

	third := resp.Attachments[2]
	if third.Name != "attachment #2" || !errors.Is(third.Err, domain.ErrNoFilename) {
		t.Errorf("unexpected third summary: %+v", third)
	}

	if !c.Closed {
		t.Error("container should be closed")
	}
}

func TestListService_OpenFailure(t *testing.T) {
	svc := NewListService(mocks.NewMockOpener(), domain.NewPropertyExtractor())

	_, err := svc.Execute(context.Background(), ListRequest{Path: "missing.msg"})
	if err == nil {
		t.Fatal("expected error for unknown file")
	}
}

func TestListService_Empty(t *testing.T) {
	opener := mocks.NewMockOpener()
	opener.Register("empty.msg", newMessage())
	svc := NewListService(opener, domain.NewPropertyExtractor())

	resp, err := svc.Execute(context.Background(), ListRequest{Path: "empty.msg"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("Total = %d, want 0", resp.Total)
	}
}
