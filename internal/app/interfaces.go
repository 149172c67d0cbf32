package app

import (
	"github.com/robfig/cron/v3"

	"github.com/interiorpro/adminconsole/config"
	"github.com/interiorpro/adminconsole/internal/console"
	"github.com/interiorpro/adminconsole/internal/session"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SessionStoreProvider provides the persisted session store
type SessionStoreProvider interface {
	SessionStore() *session.BoltStore
}

// NotifierProvider provides the operator notification bus
type NotifierProvider interface {
	Notifier() *console.Notifier
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Components should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	SessionStoreProvider
	NotifierProvider
	SchedulerProvider

	// StartAutoRefresh registers the periodic catalog refresh and
	// starts the scheduler. A no-op when auto refresh is disabled.
	StartAutoRefresh(run func()) error
	// Release frees application resources.
	Release()
}
