package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dbpool/pkg/api"
	"dbpool/pkg/config"
	"dbpool/pkg/health"
	"dbpool/pkg/logger"
	"dbpool/pkg/pool"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "db_config.ini", "path to configuration file")
	addr := flag.String("addr", ":8090", "HTTP listen address")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error, fatal)")
	logFormat := flag.String("log-format", "text", "log format (text or json)")
	flag.Parse()

	logger.Init(logger.LogLevel(*logLevel), *logFormat)
	log := logger.Get()

	src, err := config.New(*configPath)
	if err != nil {
		log.Warn("configuration degraded", "error", err)
	}

	p, err := pool.Init(src)
	if err != nil {
		log.Fatal("failed to start pool", "error", err)
	}

	monitor := health.NewMonitor()
	monitor.SetComponentStatus("pool", health.StatusHealthy, "")

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), api.RequestLogger())
	api.NewHandler(p, monitor).Register(router)

	server := &http.Server{
		Addr:    *addr,
		Handler: router,
	}

	go func() {
		log.Info("http server listening", "addr", *addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.ErrorWithErr("http server failed", err)
		}
	}()

	// Block until asked to stop, then drain the server before the pool so
	// in-flight requests can still release their leases.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.ErrorWithErr("http shutdown failed", err)
	}
	if err := p.Close(); err != nil {
		log.ErrorWithErr("pool shutdown failed", err)
	}
	log.Info("stopped")
}
