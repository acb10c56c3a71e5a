package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/msgx/internal/adapters/cfb"
	"github.com/kamal-hamza/msgx/internal/adapters/filesystem"
	"github.com/kamal-hamza/msgx/internal/core/domain"
	"github.com/kamal-hamza/msgx/internal/core/services"
	"github.com/kamal-hamza/msgx/pkg/appdirs"
	"github.com/kamal-hamza/msgx/pkg/config"
	"github.com/kamal-hamza/msgx/pkg/ui"
)

var (
	appDirs   *appdirs.Dirs
	appConfig *config.Config

	// --config
	configFile string

	// Services
	extractService *services.ExtractService
	listService    *services.ListService

	// Extraction flags shared by root, pick and watch
	rootExtractFlags = &extractFlags{}
)

// rootCmd represents the base command; given a file it extracts attachments
var rootCmd = &cobra.Command{
	Use:   "msgx [flags] <file.msg>",
	Short: "msgx - extract attachments from Outlook .msg files",
	Long: ui.StyleTitle.Render("msgx") + " - Outlook attachment extractor\n\n" +
		"Writes every attachment stored in a .msg file to disk, keeping the\n" +
		"attachment's own file name.\n\n" +
		"Examples:\n" +
		"  msgx mail.msg\n" +
		"  msgx --subfolder --prefix mail.msg\n" +
		"  msgx -o ~/Downloads --overwrite mail.msg",
	Args:              cobra.ExactArgs(1),
	PersistentPreRunE: initializeApp,
	RunE:              runExtract,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/msgx/config.yaml)")
	rootExtractFlags.bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp loads configuration and wires the services
func initializeApp(cmd *cobra.Command, args []string) error {
	dirs, err := appdirs.New()
	if err != nil {
		return err
	}
	appDirs = dirs

	path := configFile
	if path == "" {
		path = appDirs.ConfigPath
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	appConfig = cfg

	ui.SetTheme(appConfig.ColorTheme)

	properties := domain.NewPropertyExtractor()
	opener := cfb.NewOpener(appConfig.LockTimeout())
	writer := filesystem.NewWriter()

	extractService = services.NewExtractService(opener, writer, properties)
	listService = services.NewListService(opener, properties)

	return nil
}

// activeConfigPath returns the config file in use
func activeConfigPath() string {
	if configFile != "" {
		return configFile
	}
	return appDirs.ConfigPath
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
