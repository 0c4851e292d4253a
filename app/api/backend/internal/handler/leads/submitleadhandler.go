package handler

import (
	"encoding/json"
	"net/http"

	"NestorAI/app/api/backend/internal/logic/leads"
	"NestorAI/app/api/backend/internal/svc"
	"NestorAI/app/api/backend/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
	xerrors "github.com/zeromicro/x/errors"
)

// SubmitLeadHandler decodes with encoding/json directly: the tagged field
// values rely on json options the framework mapper does not honor.
func SubmitLeadHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SubmitLeadRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.ErrorCtx(r.Context(), w,
				xerrors.New(http.StatusBadRequest, "invalid request body"))
			return
		}

		l := leads.NewSubmitLeadLogic(r.Context(), svcCtx)
		resp, err := l.SubmitLead(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
