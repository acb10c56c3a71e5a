package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kamal-hamza/msgx/internal/core/domain"
	"github.com/kamal-hamza/msgx/internal/core/ports"
)

// ExtractService writes the attachments of a message to disk
type ExtractService struct {
	opener     ports.ContainerOpener
	writer     ports.AttachmentWriter
	properties *domain.PropertyExtractor
}

// NewExtractService creates a new extract service
func NewExtractService(opener ports.ContainerOpener, writer ports.AttachmentWriter, properties *domain.PropertyExtractor) *ExtractService {
	return &ExtractService{
		opener:     opener,
		writer:     writer,
		properties: properties,
	}
}

// ExtractRequest represents a request to extract attachments from one message
type ExtractRequest struct {
	Path      string // .msg file
	OutputDir string // Target directory (default: ".")
	Prefix    bool   // Prefix output names with the message file name
	Subfolder bool   // Write into OutputDir/<message stem>
	Overwrite bool   // Replace existing files instead of suffixing
	KeepGoing bool   // Skip failing attachments instead of aborting
	Sanitize  bool   // Replace path separators and reserved characters in names

	// Select limits extraction to the attachments it returns true for
	// (by traversal index). Nil selects everything.
	Select func(index int) bool
}

// WrittenFile describes one extracted attachment
type WrittenFile struct {
	Index int
	Name  string // Attachment display name
	Path  string // Where the payload was written
	Size  int
}

// ExtractResponse represents the outcome of an extraction
type ExtractResponse struct {
	OutputDir string
	Written   []WrittenFile
	Failures  []error // Only populated with KeepGoing
	Skipped   int     // Not selected
}

// Execute extracts every attachment of req.Path. Without KeepGoing the
// first failing attachment aborts the run; files already written stay.
func (s *ExtractService) Execute(ctx context.Context, req ExtractRequest) (*ExtractResponse, error) {
	c, err := s.opener.Open(ctx, req.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", req.Path, err)
	}
	defer c.Close()

	dir := OutputDir(req.Path, req.OutputDir, req.Subfolder)
	if err := s.writer.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	resp := &ExtractResponse{OutputDir: dir}

	for att, err := range Attachments(c, s.properties) {
		if err == nil {
			if req.Select != nil && !req.Select(att.Index) {
				resp.Skipped++
				continue
			}

			var written WrittenFile
			written, err = s.write(ctx, req, dir, att)
			if err == nil {
				resp.Written = append(resp.Written, written)
				continue
			}
		} else if req.Select != nil && !req.Select(errorIndex(err)) {
			resp.Skipped++
			continue
		}

		if !req.KeepGoing {
			return resp, err
		}
		resp.Failures = append(resp.Failures, err)
	}

	return resp, nil
}

func (s *ExtractService) write(ctx context.Context, req ExtractRequest, dir string, att *domain.Attachment) (WrittenFile, error) {
	name, err := att.Filename()
	if err != nil {
		return WrittenFile{}, domain.NewAttachmentError(att.Index, "", "", "", err)
	}
	if req.Sanitize {
		name = domain.SanitizeFilename(name)
	}
	name = domain.OutputFilename(name, req.Path, req.Prefix)

	path, err := s.writer.Write(ctx, dir, name, att.Data, req.Overwrite)
	if err != nil {
		return WrittenFile{}, domain.NewAttachmentError(att.Index, att.LongFilename, att.ShortFilename, "",
			fmt.Errorf("failed to write %s: %w", name, err))
	}

	return WrittenFile{
		Index: att.Index,
		Name:  att.DisplayName(),
		Path:  path,
		Size:  len(att.Data),
	}, nil
}

// OutputDir returns the directory attachments of msgPath are written to
func OutputDir(msgPath, base string, subfolder bool) string {
	if base == "" {
		base = "."
	}
	if !subfolder {
		return base
	}
	name := filepath.Base(msgPath)
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	if stem == "" {
		stem = name
	}
	return filepath.Join(base, stem)
}

func errorIndex(err error) int {
	var attErr *domain.AttachmentError
	if errors.As(err, &attErr) {
		return attErr.Index
	}
	return -1
}
