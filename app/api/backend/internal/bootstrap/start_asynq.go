package bootstrap

import (
	"NestorAI/app/api/backend/internal/mq"
	"NestorAI/app/api/backend/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// StartAsynq runs the embedded billing worker and returns a shutdown func.
// Without a configured redis the webhook logic applies mutations inline, so
// this is a no-op then.
func StartAsynq(sc *svc.ServiceContext) func() {
	c := sc.Config.Asynq
	if c.Addr == "" {
		logx.Info("asynq not configured, billing mutations apply inline")
		return func() {}
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: c.Addr, Password: c.Pass, DB: c.DB},
		asynq.Config{
			Concurrency: sc.Config.AsynqSrv.Concurrency,
			Queues:      map[string]int{"billing": 1},
		},
	)

	go func() {
		if err := srv.Run(mq.NewBillingMux(sc)); err != nil {
			logx.Errorw("asynq server exited", logx.Field("err", err))
		}
	}()

	return srv.Shutdown
}
