package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/interiorpro/adminconsole/internal/apistub"
)

var (
	listen  = flag.String("listen", ":5000", "listen address")
	dataDir = flag.String("data", "./stubdata", "data directory for uploads")
)

func main() {
	flag.Parse()

	srv, err := apistub.NewServer(filepath.Join(*dataDir, "uploads"))
	if err != nil {
		log.Fatalf("stub init failed: %v", err)
	}

	go func() {
		log.Printf("product api stub listening on %s", *listen)
		if err := srv.Start(*listen); err != nil && err != http.ErrServerClosed {
			log.Fatalf("stub server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
