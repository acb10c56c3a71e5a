package cmd

import (
	"errors"
	"fmt"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/msgx/internal/core/services"
	"github.com/kamal-hamza/msgx/pkg/ui"
)

var pickCmd = &cobra.Command{
	Use:   "pick <file.msg>",
	Short: "Choose which attachments to extract",
	Long: `Open an interactive finder over the attachments of a .msg file and
extract only the selected ones.

Use Tab to mark several attachments and Enter to confirm.

Examples:
  msgx pick mail.msg
  msgx pick --subfolder mail.msg`,
	Args: cobra.ExactArgs(1),
	RunE: runPick,
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	path := args[0]

	resp, err := listService.Execute(ctx, services.ListRequest{Path: path})
	if err != nil {
		return err
	}

	candidates := extractable(resp.Attachments)
	if len(candidates) == 0 {
		fmt.Println(ui.FormatWarning("No extractable attachments in " + path))
		return nil
	}

	idxs, err := fuzzyfinder.FindMulti(
		candidates,
		func(i int) string { return candidates[i].Name },
		fuzzyfinder.WithHeader(path),
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return attachmentPreview(candidates[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			fmt.Println(ui.FormatMuted("Nothing selected"))
			return nil
		}
		return fmt.Errorf("failed to select attachments: %w", err)
	}

	req := rootExtractFlags.request(cmd.Flags(), appConfig, path)
	req.Select = selection(candidates, idxs)

	return extract(ctx, req, rootExtractFlags.copyOutputPath(cmd.Flags(), appConfig))
}

// extractable drops attachments that failed to assemble
func extractable(all []services.AttachmentSummary) []services.AttachmentSummary {
	var out []services.AttachmentSummary
	for _, a := range all {
		if a.Err == nil {
			out = append(out, a)
		}
	}
	return out
}

// selection maps finder positions back to attachment indexes
func selection(candidates []services.AttachmentSummary, picked []int) func(int) bool {
	chosen := make(map[int]bool, len(picked))
	for _, i := range picked {
		chosen[candidates[i].Index] = true
	}
	return func(index int) bool {
		return chosen[index]
	}
}

func attachmentPreview(a services.AttachmentSummary) string {
	return fmt.Sprintf("Attachment #%d\n\nName: %s\nLong name: %s\nShort name: %s\nSize: %s",
		a.Index, a.Name, a.LongFilename, a.ShortFilename, ui.FormatSize(a.Size))
}
