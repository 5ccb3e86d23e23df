package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/rustycoin/server"
	"github.com/rustycoin/server/internal/config"
	"github.com/rustycoin/server/internal/node"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "server_config.yml", "path to the server configuration file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load(*configPath)
	if cfg.Server.LogLevel != "" {
		level, err := log.ParseLevel(cfg.Server.LogLevel)
		if err != nil {
			log.Fatalf("Invalid log level: %v", err)
		}
		log.SetLevel(level)
	}

	registry := node.NewRegistry()
	srv := server.NewServer(ctx, cfg, registry)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-gctx.Done()
		srv.Stop()
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithField("caller", "main").WithError(err).Fatal("Server exited")
	}
}
