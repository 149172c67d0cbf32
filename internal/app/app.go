package app

import (
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/interiorpro/adminconsole/config"
	"github.com/interiorpro/adminconsole/internal/console"
	"github.com/interiorpro/adminconsole/internal/session"
)

// Application owns the process-wide resources of the console: logger,
// session database, notification bus, and the background scheduler.
type Application struct {
	appConfig    *config.AppConfig
	sessionStore *session.BoltStore
	notifier     *console.Notifier
	sched        *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider       = (*Application)(nil)
	_ SessionStoreProvider = (*Application)(nil)
	_ NotifierProvider     = (*Application)(nil)
	_ SchedulerProvider    = (*Application)(nil)
	_ AppContext           = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) SessionStore() *session.BoltStore {
	return a.sessionStore
}

func (a *Application) Notifier() *console.Notifier {
	return a.notifier
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

func (a *Application) Init() error {
	cfg := a.appConfig
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	if err := os.MkdirAll(cfg.System.Workdir, 0o755); err != nil {
		return err
	}

	a.initLogger()

	a.sessionStore, err = session.Open(cfg.SessionDBPath())
	if err != nil {
		return err
	}

	a.notifier = console.NewNotifier()
	a.initJob()
	return nil
}

// initLogger builds the zap logger. Stdout belongs to the terminal
// renderer, so file output is the primary sink; without a file the
// logs go to stderr.
func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		filename := cfg.Logger.Filename
		if filename == "" {
			filename = filepath.Join(cfg.System.Workdir, "adminconsole.log")
		}
		lumberJackLogger := &lumberjack.Logger{
			Filename:   filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(lumberJackLogger),
			zapConfig.Level,
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		zapConfig.OutputPaths = []string{"stderr"}
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.sessionStore != nil {
		_ = a.sessionStore.Close()
	}
	_ = zap.L().Sync()
}
