package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kamal-hamza/msgx/internal/core/domain"
	"github.com/kamal-hamza/msgx/internal/core/ports"
)

// ListService reports the attachments of a message without writing anything
type ListService struct {
	opener     ports.ContainerOpener
	properties *domain.PropertyExtractor
}

// NewListService creates a new list service
func NewListService(opener ports.ContainerOpener, properties *domain.PropertyExtractor) *ListService {
	return &ListService{
		opener:     opener,
		properties: properties,
	}
}

// ListRequest represents a request to list attachments
type ListRequest struct {
	Path string
}

// AttachmentSummary describes one attachment, or why it cannot be extracted
type AttachmentSummary struct {
	Index         int
	Name          string // Chosen output name, or the display name on error
	ShortFilename string
	LongFilename  string
	Size          int
	Err           error
}

// ListResponse represents the response from listing attachments
type ListResponse struct {
	Attachments []AttachmentSummary
	Total       int
	Failed      int
}

// Execute lists every attachment container of req.Path. Per-attachment
// errors are reported in the summary instead of aborting the listing.
func (s *ListService) Execute(ctx context.Context, req ListRequest) (*ListResponse, error) {
	c, err := s.opener.Open(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", req.Path, err)
	}
	defer c.Close()

	resp := &ListResponse{}
	index := 0
	for att, err := range Attachments(c, s.properties) {
		summary := AttachmentSummary{Index: index}
		index++

		if err != nil {
			summary.Err = err
			var attErr *domain.AttachmentError
			if errors.As(err, &attErr) {
				summary.Index = attErr.Index
				summary.Name = attErr.Name
			}
			resp.Failed++
			resp.Attachments = append(resp.Attachments, summary)
			continue
		}

		summary.Index = att.Index
		summary.ShortFilename = att.ShortFilename
		summary.LongFilename = att.LongFilename
		summary.Size = len(att.Data)
		name, err := att.Filename()
		if err != nil {
			summary.Name = att.DisplayName()
			summary.Err = domain.NewAttachmentError(att.Index, "", "", "", err)
			resp.Failed++
		} else {
			summary.Name = name
		}
		resp.Attachments = append(resp.Attachments, summary)
	}
	resp.Total = len(resp.Attachments)

	return resp, nil
}
