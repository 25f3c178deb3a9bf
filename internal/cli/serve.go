package cli

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/tabgrid/pkg/api"
)

// shutdownTimeout bounds the graceful shutdown, including the final flush
// of every open session.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout editor over HTTP",
		Long: `Serve the layout editing API and the generated stylesheet.

The server runs until interrupted. On shutdown every open editing session is
closed and its pending writes are flushed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.config().Server.Addr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	store, err := c.openStore(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	logger := loggerFromContext(ctx)
	srv := api.NewServer(store, api.Options{Logger: logger})
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		printInfo("Listening on %s", StyleLink.Render("http://"+displayAddr(addr)))
		if err := httpSrv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return stderrors.Join(httpSrv.Shutdown(sctx), srv.Shutdown(sctx))
	})

	if err := g.Wait(); err != nil {
		return err
	}
	printSuccess("Server stopped")
	return nil
}

// displayAddr turns a bare ":port" into a clickable localhost address.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
