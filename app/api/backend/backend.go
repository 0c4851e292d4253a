package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"net/http"

	"NestorAI/app/api/backend/internal/bootstrap"
	"NestorAI/app/api/backend/internal/config"
	"NestorAI/app/api/backend/internal/handler"
	"NestorAI/app/api/backend/internal/svc"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	xerrors "github.com/zeromicro/x/errors"
)

var configFile = flag.String("f", "etc/backend.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf, rest.WithCors())
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	httpx.SetErrorHandlerCtx(errorHandler)
	handler.RegisterHandlers(server, ctx)

	stopWorker := bootstrap.StartAsynq(ctx)
	defer stopWorker()

	fmt.Printf("Starting backend at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

func errorHandler(_ context.Context, err error) (int, any) {
	var cm *xerrors.CodeMsg
	if stderrors.As(err, &cm) {
		return cm.Code, map[string]string{"error": cm.Msg}
	}
	return http.StatusBadRequest, map[string]string{"error": err.Error()}
}
