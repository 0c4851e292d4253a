package billing

import (
	"context"
	"net/http"

	"NestorAI/app/api/backend/internal/svc"
	"NestorAI/app/api/backend/internal/types"
	"NestorAI/app/common/util"

	"github.com/stripe/stripe-go/v76"
	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type CreateCheckoutSessionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateCheckoutSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateCheckoutSessionLogic {
	return &CreateCheckoutSessionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// CreateCheckoutSession opens a subscription checkout for the caller. The
// Stripe customer is reused by email so repeat checkouts never fork billing
// history, and the caller uid rides along as metadata for the webhook.
func (l *CreateCheckoutSessionLogic) CreateCheckoutSession(req *types.CheckoutSessionRequest) (*types.CheckoutSessionResponse, error) {
	id, err := util.IdentityFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	cust, err := l.findOrCreateCustomer(id)
	if err != nil {
		l.Errorw("stripe customer lookup failed",
			logx.Field("uid", id.Uid), logx.Field("err", err))
		// any auth or Stripe failure on this endpoint is a 401
		return nil, xerrors.New(http.StatusUnauthorized, "Failed to create checkout session")
	}

	cfg := l.svcCtx.Config.Stripe
	successUrl := req.SuccessUrl
	if successUrl == "" {
		successUrl = cfg.SuccessUrl
	}
	cancelUrl := req.CancelUrl
	if cancelUrl == "" {
		cancelUrl = cfg.CancelUrl
	}

	params := &stripe.CheckoutSessionParams{
		Customer:   stripe.String(cust.ID),
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(successUrl),
		CancelURL:  stripe.String(cancelUrl),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(cfg.PriceId), Quantity: stripe.Int64(1)},
		},
	}
	if cfg.TrialDays > 0 {
		params.SubscriptionData = &stripe.CheckoutSessionSubscriptionDataParams{
			TrialPeriodDays: stripe.Int64(cfg.TrialDays),
		}
	}
	params.AddMetadata("uid", id.Uid)

	sess, err := l.svcCtx.Stripe.CheckoutSessions.New(params)
	if err != nil {
		l.Errorw("stripe checkout session failed",
			logx.Field("uid", id.Uid), logx.Field("err", err))
		return nil, xerrors.New(http.StatusUnauthorized, "Failed to create checkout session")
	}

	return &types.CheckoutSessionResponse{Url: sess.URL}, nil
}

func (l *CreateCheckoutSessionLogic) findOrCreateCustomer(id util.Identity) (*stripe.Customer, error) {
	it := l.svcCtx.Stripe.Customers.List(&stripe.CustomerListParams{
		Email: stripe.String(id.Email),
	})
	if it.Next() {
		return it.Customer(), nil
	}
	if err := it.Err(); err != nil {
		return nil, err
	}

	params := &stripe.CustomerParams{Email: stripe.String(id.Email)}
	params.AddMetadata("uid", id.Uid)
	return l.svcCtx.Stripe.Customers.New(params)
}
