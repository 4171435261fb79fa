// Command studiosite serves the nodestree.media studio page and relays its
// contact form to the configured form endpoint.
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

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/nodestree/studiosite/internal/adapter/driven/content"
	"github.com/nodestree/studiosite/internal/adapter/driven/formendpoint"
	httphandler "github.com/nodestree/studiosite/internal/adapter/driving/http"
	webhandler "github.com/nodestree/studiosite/internal/adapter/driving/web"
	"github.com/nodestree/studiosite/internal/application"
	"github.com/nodestree/studiosite/internal/config"
	"github.com/nodestree/studiosite/internal/platform/otel"
)

const serviceName = "studiosite"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on invalid env vars).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"form_endpoint", cfg.FormEndpoint,
		"form_timeout", cfg.FormTimeout,
		"form_ttl", cfg.FormTTL,
		"content_path", cfg.ContentPath,
		"tracing", cfg.TracingEnabled(),
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Tracing (no-op when no OTLP endpoint is configured).
	shutdownTracing, err := otel.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Error("tracing shutdown error", "error", err)
		}
	}()

	// 4. Load page content.
	var source *content.Source
	if cfg.ContentPath != "" {
		source, err = content.NewFileSource(cfg.ContentPath)
	} else {
		source, err = content.NewDefaultSource()
	}
	if err != nil {
		return err
	}

	// 5. Wire the form endpoint and the form registry.
	sender, err := formendpoint.NewClient(cfg.FormEndpoint, cfg.FormTimeout)
	if err != nil {
		return err
	}

	forms := application.NewFormRegistry(sender, application.SystemClock(), application.FormRegistryConfig{
		TTL:      cfg.FormTTL,
		MaxForms: cfg.MaxForms,
	}, slog.Default())

	registryDone := make(chan struct{})
	go func() {
		defer close(registryDone)
		forms.Start(ctx)
	}()

	// 6. Register API and web routes.
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, httphandler.NewHandler(forms, slog.Default()))
	webhandler.RegisterRoutes(mux, webhandler.NewHandler(source, forms, cfg.SecureCookies, slog.Default()))

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.WriteTimeout(),
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	slog.Info("studiosite started", "listen_addr", cfg.ListenAddr)

	// 7. Wait for shutdown signal or a listener failure.
	select {
	case <-ctx.Done():
		slog.Info("shutting down")
	case err := <-serveErr:
		stop()
		<-registryDone
		return err
	}

	// 8. Graceful shutdown; the drain outlasts the form endpoint timeout so
	// in-flight submits finish first.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}
	<-registryDone

	slog.Info("shutdown complete")
	return nil
}
