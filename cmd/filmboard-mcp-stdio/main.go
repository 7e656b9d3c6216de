package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qyinm/filmboard/catalog"
	"github.com/qyinm/filmboard/config"
	"github.com/qyinm/filmboard/mcpsrv"
)

var version = "dev"

type cacheClearSource interface {
	ClearCache()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg := mcpsrv.LoadConfig()
	source := catalog.Open(config.Load())
	server := mcpsrv.NewServer(source, version, &mcpsrv.ServerOptions{
		EnableSearch: cfg.EnableSearch,
		EnableAdmin:  cfg.EnableAdmin,
		APIKey:       cfg.APIKey,
	})

	if cfg.CacheClearInterval > 0 {
		if clearable, ok := source.(cacheClearSource); ok {
			go func() {
				ticker := time.NewTicker(cfg.CacheClearInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						clearable.ClearCache()
					case <-ctx.Done():
						return
					}
				}
			}()
		}
	}

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("stdio mcp server failed: %v", err)
	}
}
