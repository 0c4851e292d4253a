package mq

import "NestorAI/app/dal/lead"

// LeadCreatedEvent is the creation event published by the backend when a form
// submission is stored. Delivery is at least once.
type LeadCreatedEvent struct {
	BusinessId string                `json:"business_id"`
	LeadId     string                `json:"lead_id"`
	FormId     string                `json:"form_id,omitempty"`
	Fields     map[string]lead.Value `json:"fields"`
}
