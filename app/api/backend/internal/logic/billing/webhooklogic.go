package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"NestorAI/app/api/backend/internal/mq"
	"NestorAI/app/api/backend/internal/svc"

	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"github.com/zeromicro/go-zero/core/logx"
)

type WebhookLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewWebhookLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WebhookLogic {
	return &WebhookLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Handle verifies the Stripe signature and reacts to the lifecycle events
// that gate platform access. Returns the HTTP status and plain-text body for
// the webhook response. Record mutations never delay the response: once the
// signature checks out Stripe gets a 200, and failures surface in logs only.
func (l *WebhookLogic) Handle(payload []byte, sigHeader string) (int, string) {
	event, err := webhook.ConstructEvent(payload, sigHeader, l.svcCtx.Config.Stripe.WebhookSecret)
	if err != nil {
		l.Errorw("webhook signature verification failed", logx.Field("err", err))
		return http.StatusBadRequest, fmt.Sprintf("Webhook Error: %s", err.Error())
	}

	switch event.Type {
	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			l.Errorw("malformed checkout session payload", logx.Field("err", err))
			break
		}
		uid := sess.Metadata["uid"]
		if uid == "" {
			l.Errorw("checkout session carries no uid metadata",
				logx.Field("session", sess.ID))
			break
		}
		customerId := ""
		if sess.Customer != nil {
			customerId = sess.Customer.ID
		}
		l.submitActivate(mq.ActivateBusinessPayload{
			BusinessId:       uid,
			StripeCustomerId: customerId,
		})

	case "customer.subscription.deleted":
		var sub stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
			l.Errorw("malformed subscription payload", logx.Field("err", err))
			break
		}
		if sub.Customer != nil {
			l.submitDeactivate(mq.DeactivateBusinessPayload{
				StripeCustomerId: sub.Customer.ID,
				Reason:           "subscription cancellation",
			})
		}

	case "invoice.payment_failed":
		var inv stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
			l.Errorw("malformed invoice payload", logx.Field("err", err))
			break
		}
		if inv.Customer != nil {
			l.submitDeactivate(mq.DeactivateBusinessPayload{
				StripeCustomerId: inv.Customer.ID,
				Reason:           "payment failure",
			})
		}

	default:
		l.Infof("ignoring webhook event type %s", event.Type)
	}

	return http.StatusOK, "OK"
}

func (l *WebhookLogic) submitActivate(p mq.ActivateBusinessPayload) {
	if l.svcCtx.AsynqClient == nil {
		if err := mq.ApplyActivation(l.ctx, l.svcCtx, p); err != nil {
			l.Errorw("inline activation failed", logx.Field("err", err))
		}
		return
	}
	l.enqueue(mq.TaskActivateBusiness, p)
}

func (l *WebhookLogic) submitDeactivate(p mq.DeactivateBusinessPayload) {
	if l.svcCtx.AsynqClient == nil {
		if err := mq.ApplyDeactivation(l.ctx, l.svcCtx, p); err != nil {
			l.Errorw("inline deactivation failed", logx.Field("err", err))
		}
		return
	}
	l.enqueue(mq.TaskDeactivateBusiness, p)
}

func (l *WebhookLogic) enqueue(name string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		l.Errorw("marshal billing task failed", logx.Field("task", name), logx.Field("err", err))
		return
	}
	// MaxRetry(0): the webhook was already acked, a failed mutation is a log
	// line and the next Stripe event, not a retry storm
	_, err = l.svcCtx.AsynqClient.Enqueue(asynq.NewTask(name, body),
		asynq.Queue("billing"), asynq.MaxRetry(0))
	if err != nil {
		l.Errorw("enqueue billing task failed", logx.Field("task", name), logx.Field("err", err))
	}
}
