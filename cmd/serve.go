package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ulazimo/kolagen/internal/components"
	"github.com/ulazimo/kolagen/internal/config"
	httpapi "github.com/ulazimo/kolagen/internal/http"
	"github.com/ulazimo/kolagen/internal/logging"
	"github.com/ulazimo/kolagen/internal/newsletter"
	"github.com/ulazimo/kolagen/internal/repository"
	"github.com/ulazimo/kolagen/internal/service"
	"github.com/ulazimo/kolagen/internal/session"
)

func newServeCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "optional dotenv file")
	return cmd
}

func serve(parent context.Context, cfg config.Config) error {
	log, err := logging.New(cfg.LogLevel, cfg.IsDevelopment())
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := repository.NewMemoryCatalog(repository.DefaultProducts)
	sessions := repository.NewMemorySessions(catalog, session.Options{
		Testimonials:  len(components.DefaultTestimonials),
		SlideInterval: cfg.SlideInterval,
		Autoplay:      cfg.SlideAutoplay,
	}, cfg.SessionTTL, log)
	if cfg.SessionSweep > 0 {
		go sessions.RunJanitor(ctx, cfg.SessionSweep)
	}

	var pub newsletter.Publisher = newsletter.NewLogPublisher(log)
	if cfg.RabbitMQURL != "" {
		amqpPub, err := newsletter.NewAMQPPublisher(cfg.RabbitMQURL, cfg.NewsletterQueue, log)
		if err != nil {
			return err
		}
		pub = amqpPub
	}
	defer func() { _ = pub.Close() }()

	srv := httpapi.NewServer(httpapi.Services{
		Products: service.NewProductService(catalog),
		Cart:     service.NewCartService(sessions),
		Orders: service.NewOrderService(catalog, service.OrderConfig{
			FormEndpoint: cfg.FormEndpoint,
			SiteURL:      cfg.SiteURL,
			Subject:      cfg.OrderSubject,
		}, log),
		Sessions:   service.NewSessionService(),
		Newsletter: service.NewNewsletterService(pub),
	}, httpapi.Options{
		CookieName:   cfg.SessionCookie,
		CookieTTL:    cfg.SessionTTL,
		SecureCookie: !cfg.IsDevelopment(),
	}, log)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
