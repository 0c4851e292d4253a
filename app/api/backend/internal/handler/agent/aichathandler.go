package handler

import (
	"net/http"

	"NestorAI/app/api/backend/internal/logic/agent"
	"NestorAI/app/api/backend/internal/svc"
	"NestorAI/app/api/backend/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func AiChatHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.AiChatRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := agent.NewAiChatLogic(r.Context(), svcCtx)
		resp, err := l.AiChat(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
