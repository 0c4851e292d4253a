package handler

import (
	"io"
	"net/http"

	"NestorAI/app/api/backend/internal/logic/billing"
	"NestorAI/app/api/backend/internal/svc"
)

// maxWebhookBody caps the raw payload read for signature verification.
const maxWebhookBody = 65536

// StripeWebhookHandler reads the raw body before any JSON decoding touches
// it, since the signature covers the exact bytes Stripe sent.
func StripeWebhookHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBody)
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "request body unreadable", http.StatusBadRequest)
			return
		}

		l := billing.NewWebhookLogic(r.Context(), svcCtx)
		status, body := l.Handle(payload, r.Header.Get("Stripe-Signature"))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}
