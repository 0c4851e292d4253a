package svc

import (
	"context"

	"NestorAI/app/dal/business"
	"NestorAI/app/dal/leadform"
	"NestorAI/app/services/notifier/internal/config"
	"NestorAI/app/services/notifier/internal/mailer"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config config.Config

	Businesses business.BusinessModel
	LeadForms  leadform.LeadFormModel

	Redis  *redis.Redis
	Mailer mailer.Sender
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	sc := &ServiceContext{
		Config:     c,
		Businesses: business.NewBusinessModel(c.Mongo.Url, c.Mongo.Database),
		LeadForms:  leadform.NewLeadFormModel(c.Mongo.Url, c.Mongo.Database),
	}

	if c.RedisConf.Host != "" {
		sc.Redis = redis.MustNewRedis(c.RedisConf)
	} else {
		logx.Info("redis not configured, redelivered lead events will not be deduplicated")
	}

	switch c.Mail.Provider {
	case "gmail":
		g := c.Mail.Gmail
		sc.Mailer = mailer.NewGmailSender(context.Background(),
			g.ClientId, g.ClientSecret, g.RefreshToken, g.Sender, g.BaseUrl)
	default:
		sc.Mailer = mailer.NewResendSender(c.Mail.Resend.APIKey, c.Mail.From, c.Mail.Resend.BaseUrl)
	}

	return sc
}
