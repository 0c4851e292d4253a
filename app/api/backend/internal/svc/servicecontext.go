package svc

import (
	"context"

	"NestorAI/app/api/backend/internal/config"
	"NestorAI/app/common/middleware"
	"NestorAI/app/common/snowflake"
	"NestorAI/app/dal/business"
	"NestorAI/app/dal/lead"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/hibiken/asynq"
	"github.com/segmentio/kafka-go"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type ServiceContext struct {
	Config config.Config

	AuthMiddleware rest.Middleware

	Businesses business.BusinessModel
	Leads      lead.LeadModel

	Stripe      *client.API
	ChatModel   *ark.ChatModel
	AsynqClient *asynq.Client
	KafkaWriter *kafka.Writer
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	if err := snowflake.SetNodeID(c.SnowflakeNode); err != nil {
		logx.Errorw("snowflake node init failed", logx.Field("err", err))
	}

	sc := &ServiceContext{
		Config:         c,
		AuthMiddleware: middleware.NewAuthMiddleware(c.Auth.IdentitySecret).Handle,
		Businesses:     business.NewBusinessModel(c.Mongo.Url, c.Mongo.Database),
		Leads:          lead.NewLeadModel(c.Mongo.Url, c.Mongo.Database),
	}

	// a dedicated client bundle, not the package-level default key
	sc.Stripe = &client.API{}
	sc.Stripe.Init(c.Stripe.SecretKey, nil)

	if c.Chat.APIKey != "" && c.Chat.Model != "" {
		cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
			BaseURL: c.Chat.BaseUrl,
			APIKey:  c.Chat.APIKey,
			Model:   c.Chat.Model,
		})
		if err != nil {
			logx.Errorw("chat model init failed, agent endpoints degraded",
				logx.Field("err", err))
		} else {
			sc.ChatModel = cm
		}
	} else {
		logx.Info("chat model not configured, agent endpoints degraded")
	}

	if c.Asynq.Addr != "" {
		sc.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     c.Asynq.Addr,
			Password: c.Asynq.Pass,
			DB:       c.Asynq.DB,
		})
	}

	if len(c.KafkaConf.Broker) > 0 && c.KafkaConf.LeadCreatedTopic != "" {
		sc.KafkaWriter = &kafka.Writer{
			Addr:         kafka.TCP(c.KafkaConf.Broker...),
			Topic:        c.KafkaConf.LeadCreatedTopic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		}
	} else {
		logx.Info("kafka not configured, stored leads will not trigger notifications")
	}

	return sc
}
