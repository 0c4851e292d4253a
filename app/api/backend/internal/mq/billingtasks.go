package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"NestorAI/app/api/backend/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// ApplyActivation marks the business active and pins the Stripe customer id.
// The underlying upsert makes redelivered checkout events harmless.
func ApplyActivation(ctx context.Context, sc *svc.ServiceContext, p ActivateBusinessPayload) error {
	if p.BusinessId == "" {
		return fmt.Errorf("activation payload has no business id")
	}
	if err := sc.Businesses.Activate(ctx, p.BusinessId, p.StripeCustomerId); err != nil {
		return fmt.Errorf("activate business %s: %w", p.BusinessId, err)
	}
	logx.WithContext(ctx).Infof("activated business %s for stripe customer %s",
		p.BusinessId, p.StripeCustomerId)
	return nil
}

// ApplyDeactivation flips every business tied to the Stripe customer to
// inactive. A customer with no matching business is logged and skipped.
func ApplyDeactivation(ctx context.Context, sc *svc.ServiceContext, p DeactivateBusinessPayload) error {
	if p.StripeCustomerId == "" {
		return fmt.Errorf("deactivation payload has no stripe customer id")
	}

	bizs, err := sc.Businesses.FindByStripeCustomerId(ctx, p.StripeCustomerId)
	if err != nil {
		return fmt.Errorf("lookup businesses for stripe customer %s: %w", p.StripeCustomerId, err)
	}
	if len(bizs) == 0 {
		logx.WithContext(ctx).Infof("no business references stripe customer %s, nothing to deactivate",
			p.StripeCustomerId)
		return nil
	}

	for _, biz := range bizs {
		if err := sc.Businesses.Deactivate(ctx, biz.Id); err != nil {
			logx.WithContext(ctx).Errorw("deactivate business failed",
				logx.Field("businessId", biz.Id), logx.Field("err", err))
			continue
		}
		logx.WithContext(ctx).Infof("deactivated business %s after %s", biz.Id, p.Reason)
	}
	return nil
}

// NewBillingMux routes billing tasks. Handlers always ack: the webhook
// endpoint has already answered Stripe, failures are logged rather than
// retried.
func NewBillingMux(sc *svc.ServiceContext) *asynq.ServeMux {
	mux := asynq.NewServeMux()

	mux.HandleFunc(TaskActivateBusiness, func(ctx context.Context, t *asynq.Task) error {
		var p ActivateBusinessPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logx.WithContext(ctx).Errorw("drop malformed activation task", logx.Field("err", err))
			return nil
		}
		if err := ApplyActivation(ctx, sc, p); err != nil {
			logx.WithContext(ctx).Errorw("activation task failed", logx.Field("err", err))
		}
		return nil
	})

	mux.HandleFunc(TaskDeactivateBusiness, func(ctx context.Context, t *asynq.Task) error {
		var p DeactivateBusinessPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			logx.WithContext(ctx).Errorw("drop malformed deactivation task", logx.Field("err", err))
			return nil
		}
		if err := ApplyDeactivation(ctx, sc, p); err != nil {
			logx.WithContext(ctx).Errorw("deactivation task failed", logx.Field("err", err))
		}
		return nil
	})

	return mux
}
