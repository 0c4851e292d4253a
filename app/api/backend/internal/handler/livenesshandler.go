package handler

import (
	"net/http"

	"NestorAI/app/api/backend/internal/svc"
)

// LivenessHandler answers uptime probes with a plain text banner.
func LivenessHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("NestorAI backend is running."))
	}
}
