package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/msgx/pkg/ui"
)

var (
	watchQuiet    bool
	watchExisting bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Extract attachments of every .msg saved into a folder",
	Long: `Watch a folder and extract the attachments of each .msg file that is
created or rewritten there.

Each message is extracted into its own subfolder unless --subfolder=false
is given. Events are debounced so a file still being written is only
processed once it settles.

Examples:
  msgx watch ~/Downloads
  msgx watch --existing --prefix ~/Mail/exports`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVarP(&watchQuiet, "quiet", "q", false, "Only report failures")
	watchCmd.Flags().BoolVar(&watchExisting, "existing", false, "Also extract .msg files already in the folder")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(getContext(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if !watchQuiet {
		fmt.Println(ui.FormatRocket("Watching for .msg files..."))
		fmt.Println(ui.FormatMuted("Folder: " + dir))
		fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
		fmt.Println()
	}

	process := func(path string) {
		req := rootExtractFlags.request(cmd.Flags(), appConfig, path)
		if !cmd.Flags().Changed("subfolder") {
			req.Subfolder = true
		}
		copyPath := rootExtractFlags.copyOutputPath(cmd.Flags(), appConfig)

		if !watchQuiet {
			fmt.Println(ui.FormatInfo("Extracting " + filepath.Base(path)))
		}
		if err := extract(ctx, req, copyPath); err != nil {
			fmt.Println(ui.FormatError(err.Error()))
		}
	}

	if watchExisting {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", dir, err)
		}
		for _, e := range entries {
			if !e.IsDir() && isMessageFile(e.Name()) {
				process(filepath.Join(dir, e.Name()))
			}
		}
	}

	settle := newDebouncer(appConfig.WatchDebounce())
	defer settle.stop()

	// Event loop; extraction runs here so only one message is handled at a time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !isMessageFile(event.Name) {
				continue
			}

			if event.Has(fsnotify.Create) || event.Has(fsnotify.Write) {
				settle.trigger(event.Name)
			}

		case path := <-settle.ready:
			if _, err := os.Stat(path); err != nil {
				// Gone before it settled
				continue
			}
			process(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)

		case <-ctx.Done():
			if !watchQuiet {
				fmt.Println()
				fmt.Println(ui.FormatMuted("Watch stopped"))
			}
			return nil
		}
	}
}

// isMessageFile reports whether name looks like a finished .msg file,
// skipping hidden and editor temporary files
func isMessageFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") || strings.HasPrefix(base, "~") {
		return false
	}
	return strings.EqualFold(filepath.Ext(base), ".msg")
}

// debouncer delivers a path on ready once no trigger for it has arrived
// for delay
type debouncer struct {
	delay  time.Duration
	ready  chan string
	done   chan struct{}
	mu     sync.Mutex
	timers map[string]*time.Timer
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{
		delay:  delay,
		ready:  make(chan string),
		done:   make(chan struct{}),
		timers: make(map[string]*time.Timer),
	}
}

func (d *debouncer) trigger(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[path]; ok {
		t.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timers[path] == t {
			delete(d.timers, path)
		}
		d.mu.Unlock()

		select {
		case d.ready <- path:
		case <-d.done:
		}
	})
	d.timers[path] = t
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for path, t := range d.timers {
		t.Stop()
		delete(d.timers, path)
	}
	close(d.done)
}

// pending returns the number of paths waiting to settle
func (d *debouncer) pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.timers)
}
