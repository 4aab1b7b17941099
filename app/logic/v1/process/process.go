package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/docchat-ai/docchat/app/core"
	"github.com/docchat-ai/docchat/pkg/safe"
)

type Process struct {
	cron *cron.Cron
	core *core.Core
}

var p *Process

func NewProcess(core *core.Core) *Process {
	p = &Process{
		cron: cron.New(),
		core: core,
	}
	return p
}

// Start schedules the background jobs and runs the cron loop.
func (s *Process) Start() {
	s.cron.AddFunc("@hourly", func() {
		safe.RunWithComponent(func() {
			CleanExpiredAccessTokens(s.core)
		}, "process.CleanExpiredAccessTokens")
	})

	s.cron.Start()
}

func (s *Process) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// CleanExpiredAccessTokens drops login tokens past their expiry so the
// token table does not grow without bound.
func CleanExpiredAccessTokens(core *core.Core) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := core.Store().AccessTokenStore().DeleteExpired(ctx, time.Now().Unix())
	if err != nil {
		slog.Error("Failed to clean expired access tokens", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		slog.Info("Cleaned expired access tokens", slog.Int64("removed", removed))
	}
}
