// Package main video store API.
//
// @title           Video Store API
// @version         1.0
// @description     Customers, videos and rentals with banking payment confirmation.
// @BasePath        /
// @schemes         http
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"videostore/app/echoServer"
	customerctrl "videostore/app/echoServer/controller/customer"
	rentalctrl "videostore/app/echoServer/controller/rental"
	videoctrl "videostore/app/echoServer/controller/video"
	"videostore/app/echoServer/validation"
	"videostore/config"
	bankingrepo "videostore/repository/banking"
	customerrepo "videostore/repository/customer"
	rentalrepo "videostore/repository/rental"
	videorepo "videostore/repository/video"
	customersvc "videostore/service/customer"
	rentalsvc "videostore/service/rental"
	videosvc "videostore/service/video"
	"videostore/util/database"
	"videostore/util/httpx"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type repos struct {
	customers customerrepo.Repo
	videos    videorepo.Repo
	rentals   rentalrepo.Repo
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// repos
	var rp repos
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		rp = repos{customerrepo.NewMemory(), videorepo.NewMemory(), rentalrepo.NewMemory()}
	default:
		if cfg.RunMigrations {
			if err := database.Migrate(cfg.DatabaseURL); err != nil {
				log.Error("db migrate failed", "err", err)
				os.Exit(1)
			}
			log.Info("database migrations applied")
		}
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect failed", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		rp = repos{customerrepo.New(db.Pool), videorepo.New(db.Pool), rentalrepo.New(db.Pool)}
	}

	bank := bankingrepo.NewHTTP(bankingrepo.Options{
		BaseURL:           cfg.BankingBaseURL,
		APIKey:            cfg.BankingAPIKey,
		UseVerifyEndpoint: cfg.BankingVerifyEndpoint,
	}, httpx.NewClient(cfg.BankingTimeout), log)

	// services
	cs := customersvc.New(rp.customers)
	vs := videosvc.New(rp.videos)
	rs := rentalsvc.New(rp.rentals, bank)
	od := rentalsvc.NewOverdue(rp.rentals)

	// controllers
	v := validation.NewValidate()
	customerC := &customerctrl.Controller{Svc: cs, V: v, Log: log}
	videoC := &videoctrl.Controller{Svc: vs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Overdue: od, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e, log)
	e.Validator = validation.New(v)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"storage": cfg.Storage,
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Customer: customerC,
		Video:    videoC,
		Rental:   rentalC,
	})

	go func() {
		log.Info("starting server", "port", cfg.Port, "env", cfg.Env, "storage", cfg.Storage)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
}
