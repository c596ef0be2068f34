package app

import (
	"context"
	"fmt"
	"time"

	pkgcron "github.com/hoshgeldi/core/internal/pkg/cron"
	"github.com/hoshgeldi/core/internal/pkg/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// registerCronJobs registers all scheduled background jobs.
func registerCronJobs(sched *pkgcron.Scheduler, db *gorm.DB, logger *zap.Logger) {
	cronLogger := logger.Named("CronService")

	sched.Register(pkgcron.Job{
		Name:     "purge_sessions",
		Interval: 12 * time.Hour,
		Fn: func(ctx context.Context) error {
			deleted, err := session.PurgeExpired(db)
			if err != nil {
				cronLogger.Warn("session purge failed", zap.Error(err))
				return err
			}
			cronLogger.Info(fmt.Sprintf("purged %d expired sessions", deleted))
			return nil
		},
	})
}
