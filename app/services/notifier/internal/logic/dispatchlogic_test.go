package logic

import (
	"context"
	"errors"
	"strings"
	"testing"

	"NestorAI/app/dal/business"
	"NestorAI/app/dal/lead"
	"NestorAI/app/dal/leadform"
	"NestorAI/app/services/notifier/internal/config"
	"NestorAI/app/services/notifier/internal/svc"
)

type fakeBusinessModel struct {
	bizs map[string]*business.Business
}

func (f *fakeBusinessModel) FindOne(_ context.Context, id string) (*business.Business, error) {
	if b, ok := f.bizs[id]; ok {
		return b, nil
	}
	return nil, business.ErrNotFound
}

func (f *fakeBusinessModel) FindByStripeCustomerId(context.Context, string) ([]*business.Business, error) {
	return nil, nil
}

func (f *fakeBusinessModel) Activate(context.Context, string, string) error { return nil }
func (f *fakeBusinessModel) Deactivate(context.Context, string) error       { return nil }

type fakeLeadFormModel struct {
	forms map[string]*leadform.LeadForm
	err   error
}

func (f *fakeLeadFormModel) FindOne(_ context.Context, _, formId string) (*leadform.LeadForm, error) {
	if f.err != nil {
		return nil, f.err
	}
	if form, ok := f.forms[formId]; ok {
		return form, nil
	}
	return nil, leadform.ErrNotFound
}

type sentMail struct {
	to, subject, html string
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, html: html})
	return nil
}

func strp(s string) *string { return &s }

func testFields() map[string]lead.Value {
	return map[string]lead.Value{
		"formId": {String: strp("form_1")},
		"name": {Map: &lead.MapValue{Fields: map[string]lead.Value{
			"label": {String: strp("Name")},
			"value": {String: strp("Jo")},
		}}},
		"email": {Map: &lead.MapValue{Fields: map[string]lead.Value{
			"label": {String: strp("Email")},
			"value": {String: strp("")},
		}}},
	}
}

func newTestSvc(biz *fakeBusinessModel, forms *fakeLeadFormModel, sender *fakeSender) *svc.ServiceContext {
	return &svc.ServiceContext{
		Config:     config.Config{},
		Businesses: biz,
		LeadForms:  forms,
		Mailer:     sender,
	}
}

func TestDispatchSendsLeadEmail(t *testing.T) {
	sender := &fakeSender{}
	sc := newTestSvc(
		&fakeBusinessModel{bizs: map[string]*business.Business{
			"biz_1": {Id: "biz_1", Email: "owner@example.com", IsActive: true},
		}},
		&fakeLeadFormModel{forms: map[string]*leadform.LeadForm{
			"form_1": {Id: "form_1", BusinessId: "biz_1", DisplayName: "Contact Us"},
		}},
		sender,
	)

	NewDispatchLogic(context.Background(), sc).Dispatch("biz_1", "lead_1", "", testFields())

	if len(sender.sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(sender.sent))
	}
	mail := sender.sent[0]
	if mail.to != "owner@example.com" {
		t.Errorf("to = %q", mail.to)
	}
	if mail.subject != defaultSubject {
		t.Errorf("subject = %q", mail.subject)
	}
	for _, want := range []string{"Contact Us", "<p><strong>Name:</strong> Jo</p>", "<p><strong>Email:</strong> —</p>"} {
		if !strings.Contains(mail.html, want) {
			t.Errorf("html missing %q:\n%s", want, mail.html)
		}
	}
	if strings.Contains(mail.html, "formId") {
		t.Errorf("reserved field rendered:\n%s", mail.html)
	}
}

func TestDispatchFormNameFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		forms *fakeLeadFormModel
		want  string
	}{
		{
			name:  "lookup failure",
			forms: &fakeLeadFormModel{err: errors.New("store unavailable")},
			want:  unknownFormName,
		},
		{
			name:  "form not found",
			forms: &fakeLeadFormModel{},
			want:  unknownFormName,
		},
		{
			name: "form without display name",
			forms: &fakeLeadFormModel{forms: map[string]*leadform.LeadForm{
				"form_1": {Id: "form_1", BusinessId: "biz_1"},
			}},
			want: unnamedFormName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			sc := newTestSvc(
				&fakeBusinessModel{bizs: map[string]*business.Business{
					"biz_1": {Id: "biz_1", Email: "owner@example.com"},
				}},
				tt.forms,
				sender,
			)

			NewDispatchLogic(context.Background(), sc).Dispatch("biz_1", "lead_1", "", testFields())

			if len(sender.sent) != 1 {
				t.Fatalf("sent %d mails, want 1", len(sender.sent))
			}
			if !strings.Contains(sender.sent[0].html, tt.want) {
				t.Errorf("html missing form name %q:\n%s", tt.want, sender.sent[0].html)
			}
		})
	}
}

func TestDispatchWithoutContactEmail(t *testing.T) {
	sender := &fakeSender{}
	sc := newTestSvc(
		&fakeBusinessModel{bizs: map[string]*business.Business{
			"biz_1": {Id: "biz_1"},
		}},
		&fakeLeadFormModel{},
		sender,
	)

	NewDispatchLogic(context.Background(), sc).Dispatch("biz_1", "lead_1", "form_1", testFields())

	if len(sender.sent) != 0 {
		t.Fatalf("sent %d mails, want none", len(sender.sent))
	}
}

func TestDispatchSendFailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("mail api 500")}
	sc := newTestSvc(
		&fakeBusinessModel{bizs: map[string]*business.Business{
			"biz_1": {Id: "biz_1", Email: "owner@example.com"},
		}},
		&fakeLeadFormModel{},
		sender,
	)

	// must not panic or propagate
	NewDispatchLogic(context.Background(), sc).Dispatch("biz_1", "lead_1", "form_1", testFields())
}
