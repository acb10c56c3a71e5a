package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/msgx/internal/core/services"
	"github.com/kamal-hamza/msgx/pkg/ui"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list <file.msg>",
	Short:   "List the attachments of a .msg file",
	Aliases: []string{"ls"},
	Long: `List the attachments stored in a .msg file without writing anything.

Attachments that cannot be extracted are shown with the reason.

Examples:
  msgx list mail.msg
  msgx ls mail.msg`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := listService.Execute(ctx, services.ListRequest{Path: args[0]})
	if err != nil {
		return err
	}

	if resp.Total == 0 {
		fmt.Println(ui.FormatWarning("No attachments found in " + args[0]))
		return nil
	}

	fmt.Println(ui.FormatHeader("Attachments in", args[0]))
	fmt.Println()

	table := ui.NewTable(
		ui.Column{Header: "#", MinWidth: 3, Align: lipgloss.Right},
		ui.Column{Header: "Name", MinWidth: 30, MaxWidth: 50},
		ui.Column{Header: "Size", MinWidth: 9, Align: lipgloss.Right},
		ui.Column{Header: "Short Name", MinWidth: 12},
	)

	for _, a := range resp.Attachments {
		size := ui.FormatSize(a.Size)
		if a.Err != nil {
			size = "-"
		}
		table.AddRow(strconv.Itoa(a.Index), a.Name, size, a.ShortFilename)
	}

	fmt.Print(table.Render())
	fmt.Println()

	for _, a := range resp.Attachments {
		if a.Err != nil {
			fmt.Println(ui.FormatError(a.Err.Error()))
		}
	}

	summary := fmt.Sprintf("Total: %d attachment(s)", resp.Total)
	if resp.Failed > 0 {
		summary += fmt.Sprintf(", %d unreadable", resp.Failed)
	}
	fmt.Println(ui.FormatMuted(summary))

	return nil
}
