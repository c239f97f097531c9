package jobs

import (
	"fmt"
	"time"

	"newsportal/internal/utils"

	"github.com/robfig/cron/v3"
)

// ResetCodePurger removes reset-code rows past retention.
type ResetCodePurger interface {
	PurgeExpired(now time.Time) (int64, error)
}

// StartResetCodeCleanup schedules periodic purging of stale password-reset
// codes. The caller stops the returned cron on shutdown.
func StartResetCodeCleanup(p ResetCodePurger, spec string) (*cron.Cron, error) {
	if spec == "" {
		spec = "@every 10m"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		n, err := p.PurgeExpired(time.Now())
		if err != nil {
			utils.LogEvent("", "jobs", "reset_purge", "error: "+err.Error())
			return
		}
		if n > 0 {
			utils.LogEvent("", "jobs", "reset_purge", fmt.Sprintf("removed=%d", n))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule reset purge: %w", err)
	}

	c.Start()
	return c, nil
}
