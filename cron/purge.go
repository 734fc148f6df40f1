package cron

import (
	"context"
	"time"

	"catering/services/online"
	"catering/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// purgeTimeout bounds a single purge run.
const purgeTimeout = 30 * time.Second

// StartPurgeJob schedules the lapsed online reservation purge on spec, evaluated
// in loc. It returns nil when spec is empty. Callers stop the scheduler on shutdown.
func StartPurgeJob(spec string, loc *time.Location, svc online.OnlineService) (*cron.Cron, error) {
	if spec == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}

	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(spec, func() { RunPurge(context.Background(), svc, time.Now()) }); err != nil {
		return nil, err
	}
	c.Start()
	utils.GetLogger().Info("[PurgeJob] scheduled", zap.String("schedule", spec), zap.String("timezone", loc.String()))
	return c, nil
}

// RunPurge performs one purge and logs the outcome.
func RunPurge(ctx context.Context, svc online.OnlineService, now time.Time) {
	ctx, cancel := context.WithTimeout(ctx, purgeTimeout)
	defer cancel()

	remaining, err := svc.PurgeExpired(ctx, now)
	if err != nil {
		utils.GetLogger().Error("[PurgeJob] purge failed", zap.Error(err))
		return
	}
	utils.GetLogger().Info("[PurgeJob] purge complete", zap.Int("remaining", len(remaining)))
}
