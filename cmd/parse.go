package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/lexfmt/lexfmt/internal/render"
)

// ParseCmd parses a document file and prints the selected artifact to
// standard output. On a structural error the message (with its source
// snippet) goes to stderr and the command exits non-zero.
type ParseCmd struct {
	// Path is the document file to parse.
	Path string `arg:"" help:"Document file to parse" type:"existingfile"` //nolint:lll,revive // Kong struct tag

	// Format selects the artifact to print.
	Format string `default:"ast-tag" enum:"tokens-core,tokens-line,ir,ast-json,ast-tag,ast-treeviz" help:"Output format"` //nolint:lll,revive // Kong struct tag

	// Copy also places the rendered artifact on the system clipboard.
	Copy bool `help:"Copy output to the clipboard"` //nolint:lll,revive // Kong struct tag

	// Output writes the artifact to a file instead of stdout.
	Output string `help:"Write output to a file" short:"o"` //nolint:lll,revive // Kong struct tag

	// Fs is the filesystem used for reads and writes; tests swap in a
	// memory-backed one.
	Fs afero.Fs `kong:"-"`
}

// Run executes the parse command.
func (c *ParseCmd) Run() error {
	fs := c.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	data, err := afero.ReadFile(fs, c.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Path, err)
	}
	logger().Debug(
		"parsing document",
		zap.String("path", c.Path),
		zap.Int("bytes", len(data)),
		zap.String("format", c.Format),
	)

	out, err := render.Render(string(data), c.Format, runtimeState.color)
	if err != nil {
		return err
	}

	if c.Copy {
		if err := clipboard.WriteAll(out); err != nil {
			logger().Sugar().Warnf("clipboard unavailable: %v", err)
		}
	}

	if c.Output != "" {
		if err := afero.WriteFile(fs, c.Output, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Output, err)
		}

		return nil
	}

	_, err = os.Stdout.WriteString(ensureTrailingNewline(out))

	return err
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}

	return s + "\n"
}
