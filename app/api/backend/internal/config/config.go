package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	LogConf logx.LogConf

	Auth   AuthConf
	Mongo  MongoConf
	Stripe StripeConf
	Chat   ChatConf

	KafkaConf KafkaConf       `json:",optional"`
	Asynq     AsynqConf       `json:",optional"`
	AsynqSrv  AsynqServerConf `json:",optional"`

	SnowflakeNode int64 `json:",default=1"`
}

type AuthConf struct {
	// IdentitySecret signs the HS256 identity tokens issued by the auth
	// frontend. Requests without a valid token never reach protected logic.
	IdentitySecret string
}

type MongoConf struct {
	Url      string
	Database string
}

type StripeConf struct {
	SecretKey     string
	WebhookSecret string
	PriceId       string
	SuccessUrl    string
	CancelUrl     string
	TrialDays     int64 `json:",default=0"`
}

type ChatConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}

type KafkaConf struct {
	Broker           []string `json:",optional"`
	LeadCreatedTopic string   `json:",optional"`
}

type AsynqConf struct {
	Addr string `json:",optional"`
	Pass string `json:",optional"`
	DB   int    `json:",optional"`
}

type AsynqServerConf struct {
	Concurrency int `json:",default=4"`
}
