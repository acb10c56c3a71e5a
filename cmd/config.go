package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/msgx/pkg/config"
	"github.com/kamal-hamza/msgx/pkg/ui"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the msgx configuration file",
	Long: `Manage the msgx configuration file.

Values in the file are defaults; flags given on the command line win.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := activeConfigPath()

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("config file already exists at %s (use --force to replace it)", path)
		}

		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}

		fmt.Println(ui.FormatSuccess("Config written to " + path))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(ui.FormatHeader("Configuration", activeConfigPath()))
		fmt.Println()
		for _, kv := range configEntries(appConfig) {
			fmt.Println(ui.RenderKeyValue(kv[0], kv[1]))
		}
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(activeConfigPath())
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := activeConfigPath()

		// Ensure it exists
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config file not found at %s (run 'msgx config init')", path)
		}

		fmt.Println(ui.FormatInfo("Opening config: " + path))

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = "vi"
		}

		c := exec.Command(editor, path)
		c.Stdin = os.Stdin
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		return c.Run()
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Replace an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configEditCmd)
}

// configEntries lists cfg as yaml key / value pairs in file order
func configEntries(cfg *config.Config) [][2]string {
	return [][2]string{
		{"output_dir", cfg.OutputDir},
		{"prefix", strconv.FormatBool(cfg.Prefix)},
		{"subfolder", strconv.FormatBool(cfg.Subfolder)},
		{"overwrite", strconv.FormatBool(cfg.Overwrite)},
		{"keep_going", strconv.FormatBool(cfg.KeepGoing)},
		{"sanitize_names", strconv.FormatBool(cfg.SanitizeNames)},
		{"copy_output_path", strconv.FormatBool(cfg.CopyOutputPath)},
		{"color_theme", cfg.ColorTheme},
		{"lock_timeout_ms", strconv.Itoa(cfg.LockTimeoutMS)},
		{"watch_debounce_ms", strconv.Itoa(cfg.WatchDebounceMS)},
	}
}
