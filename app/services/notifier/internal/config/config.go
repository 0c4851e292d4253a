package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type Config struct {
	LogConf logx.LogConf

	Mongo     MongoConf
	KafkaConf KafkaConf

	// dedup lease store; when absent, redelivered events are not filtered
	RedisConf       redis.RedisConf `json:",optional"`
	DedupTTLSeconds int             `json:",default=86400"`

	Mail MailConf
}

type MongoConf struct {
	Url      string
	Database string
}

type KafkaConf struct {
	Broker           []string
	LeadCreatedTopic string
	Group            string
}

type MailConf struct {
	Provider string `json:",options=resend|gmail,default=resend"`
	From     string
	Subject  string     `json:",optional"`
	Resend   ResendConf `json:",optional"`
	Gmail    GmailConf  `json:",optional"`
}

type ResendConf struct {
	APIKey  string
	BaseUrl string `json:",optional"`
}

type GmailConf struct {
	ClientId     string
	ClientSecret string
	RefreshToken string
	Sender       string
	BaseUrl      string `json:",optional"`
}
