package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/previewsync/internal/engine"
	"github.com/danieljhkim/previewsync/internal/model"
	"github.com/danieljhkim/previewsync/internal/transport"
)

var (
	serveAddr    string
	serveSaveDir string
	serveMode    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve host apps and rendering surfaces over WebSockets",
	Long: `Start the preview server.

Host apps connect to /ws/app/{appID} and send save requests. Rendering
surfaces connect to /ws/preview/{projectID} (optionally with ?app=<appID>)
and send pointer, keyboard, scroll and page events; selection and
highlight changes are sent back to the surface and the bound app.

Publishing saves have no dialog to ask, so they land in --save-dir.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		defer e.close()

		addr := serveAddr
		if addr == "" {
			addr = e.cfg.Serve.Addr
		}

		mode := model.DocumentMode(serveMode)
		switch mode {
		case model.ModeLive, model.ModeStatic, model.ModeDesign:
		default:
			return fmt.Errorf("unknown mode %q", serveMode)
		}

		saveDir := serveSaveDir
		if saveDir == "" {
			if saveDir, err = os.Getwd(); err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}
		}

		srv := transport.NewServer(transport.Options{
			Registry: e.registry,
			Engine: engine.Deps{
				FS:                e.fs,
				Names:             engine.SaveNamesFromConfig(e.cfg.Save),
				LiveRenderSurface: e.cfg.LiveRenderSurface(),
			},
			FS:      e.fs,
			SaveDir: saveDir,
			Mode:    mode,
			Logger:  e.logger,
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, addr, srv.Handler(), e)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, 127.0.0.1:1338)")
	serveCmd.Flags().StringVar(&serveSaveDir, "save-dir", "", "Directory for published saves (default current directory)")
	serveCmd.Flags().StringVar(&serveMode, "mode", string(model.ModeLive), "Document mode of previews: live, static or design")
}

// serve runs handler on addr until ctx is done.
func serve(ctx context.Context, addr string, handler http.Handler, e *env) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	httpSrv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		e.logger.Info("serve: listening", "addr", ln.Addr().String(), "registry", e.cfg.Registry.Driver)
		errCh <- httpSrv.Serve(ln)
	}()

	if !jsonOutput {
		PrintSuccess(fmt.Sprintf("Serving on http://%s", ln.Addr()))
	}

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	e.logger.Info("serve: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
