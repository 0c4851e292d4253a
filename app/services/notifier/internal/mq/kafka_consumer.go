package mq

import (
	"context"
	"encoding/json"
	"time"

	"NestorAI/app/services/notifier/internal/logic"
	"NestorAI/app/services/notifier/internal/svc"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
)

// fetchRetryDelay throttles the loop while the broker is unreachable.
var fetchRetryDelay = time.Second

// reader is the subset of kafka.Reader the consume loop uses.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

// StartLeadCreatedConsumer runs a blocking Kafka consumer loop that turns
// lead creation events into outbound notifications. Messages are committed
// whether or not dispatch succeeded: the platform redelivers on consumer
// crash, the application never retries.
func StartLeadCreatedConsumer(ctx context.Context, sc *svc.ServiceContext) error {
	c := sc.Config.KafkaConf
	if len(c.Broker) == 0 || c.LeadCreatedTopic == "" || c.Group == "" {
		return nil
	}

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     c.Broker,
		GroupID:     c.Group,
		Topic:       c.LeadCreatedTopic,
		MinBytes:    1,
		MaxBytes:    10 << 20,
		MaxWait:     50 * time.Millisecond,
		StartOffset: kafka.FirstOffset,
	})
	defer r.Close()

	return consume(ctx, sc, r)
}

func consume(ctx context.Context, sc *svc.ServiceContext, r reader) error {
	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logx.WithContext(ctx).Errorw("fetch lead event failed", logx.Field("err", err))
			time.Sleep(fetchRetryDelay)
			continue
		}

		var evt LeadCreatedEvent
		if err := json.Unmarshal(m.Value, &evt); err != nil {
			logx.WithContext(ctx).Errorw("drop malformed lead event",
				logx.Field("err", err), logx.Field("offset", m.Offset))
		} else {
			logic.NewDispatchLogic(ctx, sc).Dispatch(evt.BusinessId, evt.LeadId, evt.FormId, evt.Fields)
		}

		_ = r.CommitMessages(ctx, m)
	}
}
