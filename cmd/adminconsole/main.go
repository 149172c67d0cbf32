package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/interiorpro/adminconsole/config"
	"github.com/interiorpro/adminconsole/internal/apiclient"
	"github.com/interiorpro/adminconsole/internal/app"
	"github.com/interiorpro/adminconsole/internal/console"
	"github.com/interiorpro/adminconsole/internal/session"
	"github.com/interiorpro/adminconsole/internal/store"
)

var (
	conffile = flag.String("c", "adminconsole.yml", "config file")
	apiFlag  = flag.String("api", "", "product service origin (overrides config)")
)

func main() {
	flag.Parse()

	cfg := config.LoadConfig(*conffile)
	if *apiFlag != "" {
		cfg.Api.Origin = *apiFlag
	}

	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "init failed:", err)
		os.Exit(1)
	}
	defer application.Release()

	gate, err := session.NewGate(cfg.Session, application.SessionStore())
	if err != nil {
		zap.S().Fatalf("session gate init failed: %v", err)
	}

	client := apiclient.New(cfg.Api.Origin, time.Duration(cfg.UploadTimeout())*time.Second)
	orch := console.NewOrchestrator(client, store.New(), application.Notifier())

	if err := application.StartAutoRefresh(func() {
		_ = orch.Refresh(context.Background())
	}); err != nil {
		zap.S().Warnf("auto refresh disabled: %v", err)
	}

	if err := console.Run(gate, orch, application.Notifier()); err != nil {
		zap.S().Fatalf("console exited: %v", err)
	}
}
