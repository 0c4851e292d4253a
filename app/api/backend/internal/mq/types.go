package mq

import "NestorAI/app/dal/lead"

const (
	TaskActivateBusiness   = "billing:activate"
	TaskDeactivateBusiness = "billing:deactivate"
)

type ActivateBusinessPayload struct {
	BusinessId       string `json:"business_id"`
	StripeCustomerId string `json:"stripe_customer_id"`
}

type DeactivateBusinessPayload struct {
	StripeCustomerId string `json:"stripe_customer_id"`
	Reason           string `json:"reason"`
}

// LeadCreatedEvent is published to Kafka after a lead document is stored.
// The notifier consumes it to send the outbound email.
type LeadCreatedEvent struct {
	BusinessId string                `json:"business_id"`
	LeadId     string                `json:"lead_id"`
	FormId     string                `json:"form_id,omitempty"`
	Fields     map[string]lead.Value `json:"fields"`
}
