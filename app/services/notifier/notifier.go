package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"NestorAI/app/services/notifier/internal/config"
	"NestorAI/app/services/notifier/internal/mq"
	"NestorAI/app/services/notifier/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
)

var configFile = flag.String("f", "etc/notifier.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	sc := svc.NewServiceContext(c)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting notifier, consuming %s...\n", c.KafkaConf.LeadCreatedTopic)
	if err := mq.StartLeadCreatedConsumer(ctx, sc); err != nil {
		logx.Errorw("lead consumer exited", logx.Field("err", err))
	}
	logx.Close()
}
