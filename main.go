package main

import (
	"context"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/thapliyals/portfolio/internal/assets"
	"github.com/thapliyals/portfolio/internal/config"
	"github.com/thapliyals/portfolio/internal/content"
	"github.com/thapliyals/portfolio/internal/view"
	"github.com/thapliyals/portfolio/internal/visits"
)

type options struct {
	Content string `long:"content" description:"YAML file overriding the built-in page content (default $CONTENT_FILE)"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

type serveCommand struct {
	Addr string `long:"addr" description:"Listen address (default :$PORT)"`

	opts *options
}

type exportCommand struct {
	Out string `short:"o" long:"out" default:"dist" description:"Directory to write the static site to"`

	opts *options
}

type environment struct {
	conf      *config.Config
	logger    *log.Logger
	portfolio content.Portfolio
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Portfolio site"
	parser.SubcommandsOptional = true

	serve := &serveCommand{opts: &opts}
	if _, err := parser.AddCommand("serve", "Serve the portfolio page", "Serve the portfolio page over HTTP (the default command).", serve); err != nil {
		log.Fatal("Failed to register command", "error", err)
	}
	export := &exportCommand{opts: &opts}
	if _, err := parser.AddCommand("export", "Write the page as a static site", "Render index.html and copy assets into a directory.", export); err != nil {
		log.Fatal("Failed to register command", "error", err)
	}

	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}

	if parser.Active == nil {
		if err := serve.Execute(nil); err != nil {
			log.Fatal("Server failed", "error", err)
		}
	}
}

func setup(opts *options) (*environment, error) {
	conf, err := config.Load(false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           conf.LogLevel,
	})
	if opts.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	path := conf.ContentPath
	if opts.Content != "" {
		path = opts.Content
	}
	p, err := loadPortfolio(path)
	if err != nil {
		return nil, err
	}
	if path == "" {
		logger.Debug("Using built-in content")
	} else {
		logger.Info("Loaded content", "file", path)
	}

	return &environment{conf: conf, logger: logger, portfolio: p}, nil
}

// loadPortfolio returns the built-in content, overlaid with path when set.
func loadPortfolio(path string) (content.Portfolio, error) {
	p := defaultPortfolio()
	if path != "" {
		var err error
		if p, err = content.Load(path, p); err != nil {
			return content.Portfolio{}, err
		}
	}
	if err := content.Validate(p); err != nil {
		return content.Portfolio{}, errors.Wrap(err, "invalid content")
	}
	return p, nil
}

func (cmd *serveCommand) Execute(_ []string) error {
	env, err := setup(cmd.opts)
	if err != nil {
		return err
	}
	logger := env.logger
	gin.SetMode(env.conf.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var store *visits.Store
	token := env.conf.AdminToken
	if env.conf.TrackVisits {
		store, err = visits.Open(ctx, env.conf.VisitsDBPath)
		if err != nil {
			return errors.Wrap(err, "open visits database")
		}
		defer store.Close()

		if token == "" {
			if token, err = generateAdminToken(); err != nil {
				return err
			}
			if gin.Mode() == gin.DebugMode {
				logger.Warn("Generated admin token (dev only)", "token", token)
			}
		}
		if _, err := cleanupOldVisitorData(ctx, store, env.conf.VisitRetention, logger); err != nil {
			logger.Error("Error cleaning up old visitor data", "error", err)
		}
		logger.Info("Visitor tracking enabled with hashed IP addresses", "db", env.conf.VisitsDBPath)
		logger.Info("Admin API available at /admin/api/stats")
	}

	addr := env.conf.Addr
	if cmd.Addr != "" {
		addr = cmd.Addr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           newRouter(env.portfolio, store, token, env.conf.VisitRetention, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "Unable to start server")
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return errors.Wrap(srv.Shutdown(shutdownCtx), "shutdown")
}

func (cmd *exportCommand) Execute(_ []string) error {
	env, err := setup(cmd.opts)
	if err != nil {
		return err
	}
	if err := exportSite(cmd.Out, env.portfolio); err != nil {
		return err
	}
	env.logger.Info("Exported static site", "dir", cmd.Out)
	return nil
}

// exportSite writes index.html and the embedded assets into dir.
func exportSite(dir string, p content.Portfolio) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "mkdir %s", dir)
	}

	index := filepath.Join(dir, "index.html")
	f, err := os.Create(index)
	if err != nil {
		return errors.Wrapf(err, "create %s", index)
	}
	if err := view.Render(f, p); err != nil {
		f.Close()
		return errors.Wrapf(err, "render %s", index)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", index)
	}

	return assets.CopyTo(dir)
}

// newRouter serves the page, its assets and, when store is set, the
// tracking middleware and admin API.
func newRouter(p content.Portfolio, store *visits.Store, adminToken string, retention time.Duration, logger *log.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	if store != nil {
		r.Use(visitorTrackingMiddleware(store, logger))
		setupAdminRoutes(r, store, adminToken, retention, logger)
	}

	svg, err := fs.Sub(assets.FS, "svg")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/svg", http.FS(svg))

	page := view.Page(p)
	r.GET("/", func(c *gin.Context) {
		c.Render(http.StatusOK, nodeRender{node: page})
	})

	r.GET("/api/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, p)
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("Request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
