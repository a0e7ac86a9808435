package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"repolens/internal/gateway/app"
)

func main() {
	a, err := app.New()
	if err != nil {
		log.Fatalf("gateway init: %v", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Printf("received %v, draining connections", sig)
	case err := <-serveErr:
		if err != nil {
			log.Fatalf("gateway serve: %v", err)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.ShutdownGrace())
	defer cancel()

	if err := a.Shutdown(ctx); err != nil {
		log.Fatalf("gateway shutdown: %v", err)
	}
	log.Println("gateway stopped")
}
