package handler

import (
	"net/http"

	"NestorAI/app/api/backend/internal/logic/billing"
	"NestorAI/app/api/backend/internal/svc"
	"NestorAI/app/api/backend/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func CreateCheckoutSessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.CheckoutSessionRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := billing.NewCreateCheckoutSessionLogic(r.Context(), svcCtx)
		resp, err := l.CreateCheckoutSession(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
