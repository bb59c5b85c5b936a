package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"github.com/danieljhkim/previewsync/internal/engine"
	"github.com/danieljhkim/previewsync/internal/fsops"
	"github.com/danieljhkim/previewsync/internal/message"
)

// cliAppID identifies the command line as the app behind a save request.
const cliAppID = "cli"

// cliHost runs engine operations from a terminal. Replies meant for the
// requesting app are recorded for the command to print.
type cliHost struct {
	fs     fsops.FS
	logger *slog.Logger
	app    *message.Recorder

	// path is the --path flag. When empty a publishing save asks on the
	// terminal, or falls back to the default name in dir.
	path string
	dir  string

	in       io.Reader
	out      io.Writer
	terminal func() bool
}

func newCLIHost(fs fsops.FS, logger *slog.Logger, path string) (*cliHost, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return &cliHost{
		fs:     fs,
		logger: logger,
		app:    message.NewRecorder(cliAppID),
		path:   path,
		dir:    dir,
		in:     os.Stdin,
		out:    os.Stderr,
		terminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
		},
	}, nil
}

func (h *cliHost) Log(msg string, args ...any) {
	h.logger.Info(msg, args...)
}

func (h *cliHost) App(ctx context.Context, id string) (message.App, error) {
	if id != cliAppID {
		return nil, nil
	}
	return h.app, nil
}

func (h *cliHost) SelectSaveFile(ctx context.Context, opts engine.SaveFileOptions) (string, error) {
	if h.path != "" {
		return filepath.Abs(h.path)
	}

	def := filepath.Join(h.dir, opts.DefaultPath)
	if h.terminal == nil || !h.terminal() {
		return def, nil
	}

	answer, err := h.prompt(opts, def)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	if answer == "-" {
		return "", nil
	}
	return filepath.Abs(answer)
}

// prompt asks for a destination. An empty answer takes def; "-" cancels.
func (h *cliHost) prompt(opts engine.SaveFileOptions, def string) (string, error) {
	filter := ""
	if len(opts.Filters) > 0 {
		f := opts.Filters[0]
		filter = fmt.Sprintf(" (%s: *.%s)", f.Name, strings.Join(f.Extensions, ", *."))
	}
	_, _ = fmt.Fprintf(h.out, "%s%s\n", opts.Title, filter)
	_, _ = fmt.Fprintf(h.out, "Path [%s, - to cancel]: ", def)

	line, err := bufio.NewReader(h.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read path: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (h *cliHost) Mkdir(ctx context.Context, dir string) error {
	return h.fs.MkdirAll(dir, 0755)
}

func (h *cliHost) WriteFile(ctx context.Context, path string, data []byte) error {
	return h.fs.AtomicWrite(path, data, 0644)
}

// Sender returns nil: there is no rendering surface behind a command.
func (h *cliHost) Sender(ctx context.Context) (message.Sender, error) {
	return nil, nil
}
