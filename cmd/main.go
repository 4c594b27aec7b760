package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oseuis57/web-ecovision/config"
	deps "github.com/oseuis57/web-ecovision/internal/debs"
	api "github.com/oseuis57/web-ecovision/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	if cfg.SeedDemoData {
		deps.Store.SeedDemoData()
	}

	a := &api.API{
		Config: cfg,
		Deps:   deps,
	}
	go deps.WebSocket.Run()
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Doing nothing for ", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")
	log.Fatal(a.Shutdown())
}
