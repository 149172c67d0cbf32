package app

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, err := time.LoadLocation(a.appConfig.System.Location)
	if err != nil {
		loc = time.Local
	}
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))
}

// StartAutoRefresh schedules the periodic catalog refresh when it is
// enabled in config and starts the scheduler. The refresh itself goes
// through the orchestrator, so its stale-response guard applies to
// scheduled fetches exactly as to manual ones.
func (a *Application) StartAutoRefresh(run func()) error {
	if !a.appConfig.Console.AutoRefresh {
		return nil
	}
	spec := a.appConfig.Console.AutoRefreshSpec
	if spec == "" {
		spec = "@every 60s"
	}
	if _, err := a.sched.AddFunc(spec, run); err != nil {
		zap.S().Errorf("init job error %s", err.Error())
		return err
	}
	a.sched.Start()
	zap.L().Info("auto refresh scheduled", zap.String("spec", spec))
	return nil
}
