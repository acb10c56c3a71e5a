package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kamal-hamza/msgx/internal/core/services"
	"github.com/kamal-hamza/msgx/pkg/config"
	"github.com/kamal-hamza/msgx/pkg/ui"
)

// extractFlags holds the command-line overrides of the extraction config
type extractFlags struct {
	prefix     bool
	subfolder  bool
	overwrite  bool
	keepGoing  bool
	copyPath   bool
	noSanitize bool
	output     string
}

func (f *extractFlags) bind(fs *pflag.FlagSet) {
	fs.BoolVar(&f.prefix, "prefix", false, "Prefix output names with the .msg file name")
	fs.BoolVar(&f.subfolder, "subfolder", false, "Write into a folder named after the .msg file")
	fs.BoolVar(&f.overwrite, "overwrite", false, "Replace existing files instead of adding _1, _2, ...")
	fs.BoolVar(&f.keepGoing, "keep-going", false, "Skip attachments that fail instead of stopping")
	fs.BoolVar(&f.copyPath, "copy-path", false, "Copy the output folder to the clipboard")
	fs.BoolVar(&f.noSanitize, "no-sanitize", false, "Keep attachment names exactly as stored")
	fs.StringVarP(&f.output, "output", "o", "", "Output directory (default: current directory)")
}

// request builds an extraction request from cfg, letting explicitly set
// flags win
func (f *extractFlags) request(fs *pflag.FlagSet, cfg *config.Config, path string) services.ExtractRequest {
	req := services.ExtractRequest{
		Path:      path,
		OutputDir: cfg.OutputDir,
		Prefix:    cfg.Prefix,
		Subfolder: cfg.Subfolder,
		Overwrite: cfg.Overwrite,
		KeepGoing: cfg.KeepGoing,
		Sanitize:  cfg.SanitizeNames,
	}

	if fs.Changed("output") {
		req.OutputDir = f.output
	}
	if fs.Changed("prefix") {
		req.Prefix = f.prefix
	}
	if fs.Changed("subfolder") {
		req.Subfolder = f.subfolder
	}
	if fs.Changed("overwrite") {
		req.Overwrite = f.overwrite
	}
	if fs.Changed("keep-going") {
		req.KeepGoing = f.keepGoing
	}
	if fs.Changed("no-sanitize") {
		req.Sanitize = !f.noSanitize
	}

	return req
}

func (f *extractFlags) copyOutputPath(fs *pflag.FlagSet, cfg *config.Config) bool {
	if fs.Changed("copy-path") {
		return f.copyPath
	}
	return cfg.CopyOutputPath
}

func runExtract(cmd *cobra.Command, args []string) error {
	req := rootExtractFlags.request(cmd.Flags(), appConfig, args[0])
	copyPath := rootExtractFlags.copyOutputPath(cmd.Flags(), appConfig)

	return extract(getContext(), req, copyPath)
}

// extract runs one extraction and prints its outcome. Failed attachments
// turn into a non-nil error even when the run kept going.
func extract(ctx context.Context, req services.ExtractRequest, copyPath bool) error {
	resp, err := extractService.Execute(ctx, req)
	if resp != nil {
		printExtraction(req.Path, resp)
	}
	if err != nil {
		return err
	}

	if n := len(resp.Failures); n > 0 {
		return fmt.Errorf("%d attachment(s) of %s could not be extracted", n, req.Path)
	}

	if copyPath && len(resp.Written) > 0 {
		dir, err := filepath.Abs(resp.OutputDir)
		if err != nil {
			dir = resp.OutputDir
		}
		// Clipboard access is best effort
		if err := clipboard.WriteAll(dir); err != nil {
			fmt.Println(ui.FormatMuted("(Clipboard access failed, please copy manually)"))
		} else {
			fmt.Println(ui.FormatMuted("Output folder copied to clipboard"))
		}
	}

	return nil
}

func printExtraction(path string, resp *services.ExtractResponse) {
	for _, w := range resp.Written {
		fmt.Println(ui.FormatAttachment(w.Path, w.Size))
	}
	for _, f := range resp.Failures {
		fmt.Println(ui.FormatError(f.Error()))
	}

	if len(resp.Written) == 0 && len(resp.Failures) == 0 {
		fmt.Println(ui.FormatWarning("No attachments found in " + path))
		return
	}

	if len(resp.Written) > 0 {
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Extracted %d attachment(s)", len(resp.Written))))
		fmt.Println(ui.FormatFolder(resp.OutputDir))
	}
}
