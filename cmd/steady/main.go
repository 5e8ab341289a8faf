package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/elowenrae/steady/internal/api"
	"github.com/elowenrae/steady/internal/config"
	"github.com/elowenrae/steady/internal/db"
	"github.com/elowenrae/steady/internal/scheduler"
	"github.com/elowenrae/steady/internal/security"
	"github.com/elowenrae/steady/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	if cfg.SecretKey == "" {
		// Auth tokens stop verifying after a restart; fine for dev, set
		// SECRET_KEY in production.
		generated, err := security.RandomString(48, security.AlphanumericAlphabet)
		if err != nil {
			log.Fatalf("secret key generation failed: %v", err)
		}
		cfg.SecretKey = generated
		log.Printf("SECRET_KEY not set, using an ephemeral key")
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var mailer services.Mailer = services.NoopMailer{}
	smtp := services.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}
	if smtp.Configured() {
		mailer = services.NewSMTPMailer(smtp)
	} else {
		log.Printf("smtp not configured, email delivery disabled")
	}

	handler := api.NewHandler(database, cfg.SecretKey, cfg.CookieSecure, services.NewVaderAnalyzer(), mailer)

	app := fiber.New(fiber.Config{
		AppName:               "Steady",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	runner := scheduler.NewRunner(handler.ScheduleService(), handler.Repositories().Users)
	if err := runner.Start(lifecycleCtx); err != nil {
		log.Fatalf("scheduler init failed: %v", err)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Steady listening on http://0.0.0.0:%s (db: %s)", cfg.Port, cfg.DBPath)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
