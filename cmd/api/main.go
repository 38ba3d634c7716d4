package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookingadmin/internal/httpapi"
	"bookingadmin/internal/notify"
	"bookingadmin/pkg/config"
	"bookingadmin/pkg/metrics"
	"bookingadmin/pkg/netlify"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AdminKey == "" {
		log.Printf("warning: ADMIN_KEY is not set; all admin requests will be rejected")
	}

	router := httpapi.NewRouter(httpapi.Dependencies{
		Cfg:      cfg,
		Store:    netlify.Client{AccessToken: cfg.Netlify.AccessToken},
		Notifier: notify.GmailMailer{Cfg: cfg.Mail},
		Metrics:  metrics.New("bookingadmin"),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("http listening on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(shutdownCtx)
}
