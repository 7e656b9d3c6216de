package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

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

	cfg := mcpsrv.LoadConfig()
	settings := config.Load()
	source := catalog.Open(settings)
	server := mcpsrv.NewServer(source, version, cfg.ServerOptions())

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

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.Port),
		Handler:           mcpsrv.NewMux(server, cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	if settings.ImportPath != "" {
		log.Printf("serving board imported from %s", settings.ImportPath)
	} else {
		log.Printf("serving %d generated cards (seed %d)", settings.Cards, settings.Seed)
	}
	log.Printf("filmboard-mcp listening on %s", httpServer.Addr)
	err := httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
