package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/labordao/chaincv/base/config"
	"github.com/labordao/chaincv/base/ctx"
	"github.com/labordao/chaincv/base/goroutine"
	"github.com/labordao/chaincv/base/log"
	"github.com/labordao/chaincv/base/metrics"
	bValidator "github.com/labordao/chaincv/base/validator"
	mmiddleware "github.com/labordao/chaincv/middleware"
	"github.com/labordao/chaincv/service/alchemy"
	"github.com/labordao/chaincv/service/resolveproxy"
	"github.com/labordao/chaincv/service/snapshot"
	ens_delivery "github.com/labordao/chaincv/stores/ens/delivery/http"
	ens_usecase "github.com/labordao/chaincv/stores/ens/usecase"
	governance_delivery "github.com/labordao/chaincv/stores/governance/delivery/http"
	governance_usecase "github.com/labordao/chaincv/stores/governance/usecase"
	hc_delivery "github.com/labordao/chaincv/stores/healthcheck/delivery/http"
	hc_usecase "github.com/labordao/chaincv/stores/healthcheck/usecase"

	_ "github.com/labordao/chaincv/app/web/docs"
)

var configPath = pflag.String("config", "infra/configs/config.yaml", "path of the yaml config file")

//	@title			ChainCV API
//	@version		1.0
//	@description	ENS resolver proxy and governance vote lookup for ChainCV.
func main() {
	pflag.Parse()

	v, err := config.Read(*configPath)
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "path": *configPath}).Panic("failed to read config")
	}
	cfg := config.Load(v)

	log.Setup(cfg.Debug)
	defer log.Sync()
	if cfg.Debug {
		log.Log().Info("Service RUN on DEBUG mode")
	}
	metrics.Setup(cfg.DatadogHost, cfg.EnvName, cfg.AppName)

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())
	e.Renderer = governance_delivery.NewRenderer()

	context := ctx.Background()

	if !cfg.Alchemy.Configured() {
		context.Warn("ALCHEMY_API_KEY is not set, ens resolution will fail")
	}

	alchemyClient := alchemy.NewClient(&alchemy.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    cfg.Alchemy.Timeout,
		Apikey:     cfg.Alchemy.ApiKey,
		Url:        cfg.Alchemy.Url,
	})
	snapshotClient := snapshot.NewClient(&snapshot.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    cfg.Snapshot.Timeout,
		Url:        cfg.Snapshot.Url,
	})
	// the page reaches the resolver through the public proxy endpoint
	proxyClient := resolveproxy.NewClient(&resolveproxy.ClientCfg{
		HttpClient: http.Client{},
		Timeout:    cfg.ResolverProxy.Timeout,
		Url:        cfg.ResolverProxy.Url,
	})

	ens := ens_usecase.New(alchemyClient)
	lookup := governance_usecase.New(&governance_usecase.LookupUseCaseCfg{
		Resolver:   proxyClient,
		VoteRepo:   snapshotClient,
		VotesLimit: cfg.Snapshot.First,
	})
	hc := hc_usecase.New(cfg.Alchemy)

	hc_delivery.New(e, hc)
	ens_delivery.New(e, ens)
	governance_delivery.New(e, lookup)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	serverDone := goroutine.RecoverableGo(func() {
		context.WithField("address", cfg.Server.Address).Info("starting server")
		if err := e.Start(cfg.Server.Address); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	},
		goroutine.WithAfterEnded(func() {
			context.WithField("address", cfg.Server.Address).Info("server goroutine ended")
		}),
		goroutine.WithAfterRecovered(func(p interface{}, stack []byte) {
			metrics.New("main").BumpSum("server.panic", 1)
		}),
	)

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		log.Log().WithField("signal", sig).Info("received signal")
	case <-serverDone:
		log.Log().Info("server stopped")
	}
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
