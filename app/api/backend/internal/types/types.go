package types

import "NestorAI/app/dal/lead"

type CheckoutSessionRequest struct {
	SuccessUrl string `json:"successUrl,optional"`
	CancelUrl  string `json:"cancelUrl,optional"`
}

type CheckoutSessionResponse struct {
	Url string `json:"url"`
}

type BillingPortalResponse struct {
	Url string `json:"url"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type AskAgentRequest struct {
	BizId    string        `json:"bizId"`
	Messages []ChatMessage `json:"messages"`
}

type AskAgentResponse struct {
	Message string `json:"message"`
}

// BizProfile is the inline business card the public chat endpoint grounds
// its answers on. Every field is optional.
type BizProfile struct {
	Name        string `json:"name,optional"`
	Description string `json:"description,optional"`
	Services    string `json:"services,optional"`
	Hours       string `json:"hours,optional"`
	Location    string `json:"location,optional"`
	Phone       string `json:"phone,optional"`
}

type AiChatRequest struct {
	Prompt string     `json:"prompt"`
	Biz    BizProfile `json:"biz,optional"`
}

type AiChatResponse struct {
	Reply string `json:"reply"`
}

type SubmitLeadRequest struct {
	BizId  string                `json:"bizId"`
	FormId string                `json:"formId"`
	Fields map[string]lead.Value `json:"fields"`
}

type SubmitLeadResponse struct {
	LeadId string `json:"leadId"`
}
