package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/lexfmt/lexfmt/internal/parser"
	"github.com/lexfmt/lexfmt/internal/render"
)

// debounceWindow coalesces the bursts of write events editors produce for
// a single save.
const debounceWindow = 100 * time.Millisecond

// WatchCmd re-runs the pipeline every time the document changes, printing
// either a one-line summary or the structural error with its source
// snippet. It watches the file's directory so editors that replace the
// file on save (rename-over) keep being observed.
type WatchCmd struct {
	// Path is the document file to watch.
	Path string `arg:"" help:"Document file to watch" type:"existingfile"` //nolint:lll,revive // Kong struct tag
}

// Run executes the watch command. It blocks until interrupted.
func (c *WatchCmd) Run() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(c.Path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(c.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", c.Path, err)
	}

	c.check()

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if abs != target {
				continue
			}
			if !event.Has(fsnotify.Write) &&
				!event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) {
				continue
			}
			logger().Debug(
				"file event",
				zap.String("op", event.Op.String()),
			)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			c.check()

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger().Sugar().Warnf("watch error: %v", watchErr)
		}
	}
}

// check parses the file once and reports the outcome.
func (c *WatchCmd) check() {
	data, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", stamp(), err)

		return
	}

	doc, err := parser.ParseDocument(string(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", stamp(), err)

		return
	}

	fmt.Printf("%s: OK (%s)\n", stamp(), render.Summary(doc))
}

func stamp() string {
	return time.Now().Format("15:04:05")
}
