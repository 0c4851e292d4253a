package handler

import (
	"net/http"

	"NestorAI/app/api/backend/internal/logic/billing"
	"NestorAI/app/api/backend/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func CreateBillingPortalSessionHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := billing.NewCreateBillingPortalSessionLogic(r.Context(), svcCtx)
		resp, err := l.CreateBillingPortalSession()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
