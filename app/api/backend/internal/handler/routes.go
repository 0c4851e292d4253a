package handler

import (
	"net/http"

	agenthandler "NestorAI/app/api/backend/internal/handler/agent"
	billinghandler "NestorAI/app/api/backend/internal/handler/billing"
	leadshandler "NestorAI/app/api/backend/internal/handler/leads"
	"NestorAI/app/api/backend/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	// public surface: liveness, the signed Stripe webhook, and the widget
	// endpoints that run before any account exists
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: LivenessHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/webhook",
				Handler: billinghandler.StripeWebhookHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/api/ai-chat",
				Handler: agenthandler.AiChatHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/submit-lead",
				Handler: leadshandler.SubmitLeadHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		rest.WithMiddlewares(
			[]rest.Middleware{serverCtx.AuthMiddleware},
			[]rest.Route{
				{
					Method:  http.MethodPost,
					Path:    "/create-checkout-session",
					Handler: billinghandler.CreateCheckoutSessionHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/create-billing-portal-session",
					Handler: billinghandler.CreateBillingPortalSessionHandler(serverCtx),
				},
				{
					Method:  http.MethodPost,
					Path:    "/ask-agent",
					Handler: agenthandler.AskAgentHandler(serverCtx),
				},
			}...,
		),
	)
}
