package cli

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dotgen/pkg/cache"
	dotgenerrors "github.com/matzehuels/dotgen/pkg/errors"
	"github.com/matzehuels/dotgen/pkg/pipeline"
	"github.com/matzehuels/dotgen/pkg/render"
)

// maxSourceBytes bounds render request bodies.
const maxSourceBytes = 1 << 20

// serveCommand creates the serve command: an HTTP service that renders
// posted DOT source.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, redisAddr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Start an HTTP server that renders DOT source.

POST /render with the DOT source as the request body. Query parameters
"engine" and "format" select the layout engine and output format. The
response body is the rendered artifact.

GET /healthz reports liveness.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)

			if addr == "" {
				addr = c.Config.ListenAddr
			}
			if redisAddr == "" {
				redisAddr = c.Config.RedisAddr
			}

			artifacts, err := c.serveCache(ctx, redisAddr, noCache)
			if err != nil {
				return err
			}
			defer artifacts.Close()

			runner := pipeline.NewRunner(artifacts, c.Logger)
			srv := &http.Server{
				Addr:              addr,
				Handler:           c.routes(runner),
				ReadHeaderTimeout: 10 * time.Second,
				// Request contexts inherit the command context, so
				// handlers see the logger and server shutdown.
				BaseContext: func(net.Listener) context.Context { return ctx },
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("render service listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return err
				}
				c.Logger.Info("render service stopped")
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the artifact cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// serveCache picks the artifact cache backend for the service: redis
// when configured, the file cache otherwise.
func (c *CLI) serveCache(ctx context.Context, redisAddr string, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, redisAddr)
		if err != nil {
			return nil, err
		}
		c.Logger.Info("using redis artifact cache", "addr", redisAddr)
		return rc, nil
	}
	return c.newCache(false), nil
}

// routes builds the service router.
func (c *CLI) routes(runner *pipeline.Runner) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/render", c.handleRender(runner))

	return r
}

// handleRender renders the posted DOT source into the requested format.
// The logger travels in the request context via [withLogger].
func (c *CLI) handleRender(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logger := loggerFromContext(req.Context())

		source, err := io.ReadAll(io.LimitReader(req.Body, maxSourceBytes+1))
		if err != nil {
			http.Error(w, "read request body", http.StatusBadRequest)
			return
		}
		if len(source) == 0 {
			http.Error(w, "empty DOT source", http.StatusBadRequest)
			return
		}
		if len(source) > maxSourceBytes {
			http.Error(w, "DOT source too large", http.StatusRequestEntityTooLarge)
			return
		}

		engine := req.URL.Query().Get("engine")
		format := req.URL.Query().Get("format")
		if format == "" {
			format = render.DefaultFormat
		}

		result, err := runner.Execute(req.Context(), pipeline.Options{
			Source:  string(source),
			Engine:  engine,
			Formats: []string{format},
			TTL:     c.Config.TTL(),
		})
		if err != nil {
			logger.Error("render request failed", "err", err)
			http.Error(w, dotgenerrors.UserMessage(err), dotgenerrors.HTTPStatus(err))
			return
		}

		data := result.Artifacts[format]
		w.Header().Set("Content-Type", render.ContentType(format))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		if _, err := w.Write(data); err != nil && !errors.Is(err, context.Canceled) {
			logger.Debug("write response", "err", err)
		}
	}
}
