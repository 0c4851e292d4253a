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

type CreateBillingPortalSessionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateBillingPortalSessionLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateBillingPortalSessionLogic {
	return &CreateBillingPortalSessionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// CreateBillingPortalSession opens the Stripe billing portal for the caller's
// business. Requires the business to have gone through checkout already, since
// the portal is keyed by the stored Stripe customer id.
func (l *CreateBillingPortalSessionLogic) CreateBillingPortalSession() (*types.BillingPortalResponse, error) {
	id, err := util.IdentityFromCtx(l.ctx)
	if err != nil {
		return nil, err
	}

	biz, err := l.svcCtx.Businesses.FindOne(l.ctx, id.Uid)
	if err != nil || biz.StripeCustomerId == "" {
		l.Errorw("no stripe customer on record",
			logx.Field("uid", id.Uid), logx.Field("err", err))
		return nil, xerrors.New(http.StatusInternalServerError, "Failed to create billing portal session")
	}

	sess, err := l.svcCtx.Stripe.BillingPortalSessions.New(&stripe.BillingPortalSessionParams{
		Customer:  stripe.String(biz.StripeCustomerId),
		ReturnURL: stripe.String(l.svcCtx.Config.Stripe.SuccessUrl),
	})
	if err != nil {
		l.Errorw("stripe billing portal session failed",
			logx.Field("uid", id.Uid), logx.Field("err", err))
		return nil, xerrors.New(http.StatusInternalServerError, "Failed to create billing portal session")
	}

	return &types.BillingPortalResponse{Url: sess.URL}, nil
}
