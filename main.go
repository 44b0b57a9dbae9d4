package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/natarelva/portfolio/internal/components"
	"github.com/natarelva/portfolio/internal/config"
	"github.com/natarelva/portfolio/internal/contact"
	"github.com/natarelva/portfolio/internal/logging"
	"github.com/natarelva/portfolio/internal/web"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("config.env", "err", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	site, err := config.LoadSite(cfg.SiteFile, defaultSite())
	if err != nil {
		if site == nil {
			slog.Error("config.site", "file", cfg.SiteFile, "err", err)
			os.Exit(1)
		}
		slog.Warn("config.site: using built-in content", "file", cfg.SiteFile, "err", err)
	}

	hasher, err := newVisitorHasher()
	if err != nil {
		slog.Error("visitor.salt", "err", err)
		os.Exit(1)
	}

	r, err := newRouter(site, logger, hasher)
	if err != nil {
		slog.Error("http.router", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("http.starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http.listen", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	slog.Info("http.shutting_down")
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("http.shutdown", "err", err)
	}
	slog.Info("http.stopped")
}

func newRouter(site *config.SiteFile, logger *slog.Logger, hasher *visitorHasher) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}

	// The page only depends on the loaded content, so it is composed once.
	body := components.Portfolio(site.Site, components.ContactButtons(site.Site.Contacts, contact.Noop{}, nil))
	page, err := web.NewPage(site.Site.Lang, site.Site.Profile.Name, site.Site.Profile.Tagline, site.Theme, body)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger, hasher))
	r.SetHTMLTemplate(tmpl)

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, web.PageName, page)
	})

	// Contact buttons post here; known targets redirect, placeholders
	// land back on the contact section.
	r.POST("/actions/:name", func(c *gin.Context) {
		name := c.Param("name")
		if _, ok := contact.Find(site.Site.Contacts, name); !ok {
			c.String(http.StatusNotFound, "unknown action %q", name)
			return
		}

		var dispatchErr error
		buttons := components.ContactButtons(
			site.Site.Contacts,
			contact.NewRedirector(c.Writer, c.Request),
			func(err error) { dispatchErr = err },
		)
		for _, b := range buttons {
			if b.Name == name {
				b.Activate()
				break
			}
		}

		if dispatchErr != nil {
			if !errors.Is(dispatchErr, contact.ErrNoTarget) {
				logging.Request(c).Warn("contact.dispatch", "action", name, "err", dispatchErr)
			}
			c.Redirect(http.StatusSeeOther, "/#contact")
		}
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, nil
}
