package logic

import (
	"context"
	"fmt"
	"html"

	"NestorAI/app/dal/lead"
	"NestorAI/app/services/notifier/internal/render"
	"NestorAI/app/services/notifier/internal/svc"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultSubject  = "New Lead Captured via NestorAI"
	unknownFormName = "Unknown Form"
	unnamedFormName = "Unnamed Form"
)

const emailShell = `<div style="border: 1px solid #ccc; padding: 20px; border-radius: 8px; font-family: Arial, sans-serif; background-color: #fafafa;">` +
	`<h2 style="color: #6b1f6a;">You've got a new lead!</h2>` +
	`<p><span style="font-size: 16px; font-weight: bold; color: #6c0;">Form:</span> %s</p>` +
	`%s</div>`

type DispatchLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewDispatchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DispatchLogic {
	return &DispatchLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// Dispatch notifies the owning business about one captured lead. Failures are
// terminal for this invocation: there is no caller to surface them to, so
// every branch logs and returns.
func (l *DispatchLogic) Dispatch(businessId, leadId, formRef string, fields map[string]lead.Value) {
	if businessId == "" || len(fields) == 0 {
		l.Errorf("lead event missing business id or fields: business=%q lead=%q", businessId, leadId)
		return
	}

	if !l.claimLead(leadId) {
		l.Infof("lead %s already notified, dropping redelivered event", leadId)
		return
	}

	formName := l.resolveFormName(businessId, formRef, fields)
	leadHTML := render.LeadHTML(fields)

	biz, err := l.svcCtx.Businesses.FindOne(l.ctx, businessId)
	if err != nil {
		l.Errorw("load business failed", logx.Field("err", err), logx.Field("business_id", businessId))
		return
	}
	if biz.Email == "" {
		l.Errorf("no contact email on business %s, lead %s not sent", businessId, leadId)
		return
	}

	subject := l.svcCtx.Config.Mail.Subject
	if subject == "" {
		subject = defaultSubject
	}
	body := fmt.Sprintf(emailShell, html.EscapeString(formName), leadHTML)

	if err := l.svcCtx.Mailer.Send(l.ctx, biz.Email, subject, body); err != nil {
		l.Errorw("send lead email failed",
			logx.Field("err", err), logx.Field("business_id", businessId), logx.Field("lead_id", leadId))
		return
	}

	l.Infof("lead email sent to %s for lead %s", biz.Email, leadId)
}

// claimLead takes a short-lived lease on the lead id so a redelivered
// creation event inside the window sends no duplicate. Without redis every
// delivery is treated as first.
func (l *DispatchLogic) claimLead(leadId string) bool {
	if l.svcCtx.Redis == nil || leadId == "" {
		return true
	}

	ttl := l.svcCtx.Config.DedupTTLSeconds
	if ttl <= 0 {
		ttl = 86400
	}
	ok, err := l.svcCtx.Redis.SetnxExCtx(l.ctx, "notifier:lead:"+leadId, "1", ttl)
	if err != nil {
		// dedup is best-effort: on store failure, prefer a duplicate email
		// over a dropped one
		l.Errorw("lead dedup check failed", logx.Field("err", err), logx.Field("lead_id", leadId))
		return true
	}
	return ok
}

// resolveFormName is best-effort: lookup failures degrade to a fallback name
// and never block the notification.
func (l *DispatchLogic) resolveFormName(businessId, formRef string, fields map[string]lead.Value) string {
	if formRef == "" {
		formRef = render.FormRef(fields)
	}
	if formRef == "" {
		return unknownFormName
	}

	form, err := l.svcCtx.LeadForms.FindOne(l.ctx, businessId, formRef)
	if err != nil {
		l.Errorw("fetch form display name failed",
			logx.Field("err", err), logx.Field("business_id", businessId), logx.Field("form_id", formRef))
		return unknownFormName
	}
	if form.DisplayName == "" {
		return unnamedFormName
	}
	return form.DisplayName
}
