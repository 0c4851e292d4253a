package agent

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"NestorAI/app/api/backend/internal/svc"
	"NestorAI/app/api/backend/internal/types"
	"NestorAI/app/common/consts/biz"
	"NestorAI/app/common/util"
	"NestorAI/app/dal/business"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	xerrors "github.com/zeromicro/x/errors"
)

type fakeModel struct {
	reply *schema.Message
	err   error
	got   []*schema.Message
}

func (f *fakeModel) Generate(_ context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.got = input
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

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

func authedCtx() context.Context {
	return context.WithValue(context.Background(), biz.IDENTITY_KEY,
		util.Identity{Uid: "biz_1", Email: "owner@example.com"})
}

func newAskLogic(ctx context.Context, bizs *fakeBusinessModel, m ChatModel) *AskAgentLogic {
	l := NewAskAgentLogic(ctx, &svc.ServiceContext{Businesses: bizs})
	l.model = m
	return l
}

func activeBiz() *fakeBusinessModel {
	return &fakeBusinessModel{bizs: map[string]*business.Business{
		"biz_1": {Id: "biz_1", Email: "owner@example.com", IsActive: true},
	}}
}

func wantCode(t *testing.T, err error, code int) {
	t.Helper()
	var cm *xerrors.CodeMsg
	if !errors.As(err, &cm) {
		t.Fatalf("err = %v, want CodeMsg", err)
	}
	if cm.Code != code {
		t.Fatalf("code = %d, want %d", cm.Code, code)
	}
}

func TestAskAgentRelaysConversation(t *testing.T) {
	m := &fakeModel{reply: schema.AssistantMessage("Hello there!", nil)}
	l := newAskLogic(authedCtx(), activeBiz(), m)

	resp, err := l.AskAgent(&types.AskAgentRequest{
		BizId: "biz_1",
		Messages: []types.ChatMessage{
			{Role: "system", Content: "be brief"},
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hello"},
			{Role: "user", Content: "opening hours?"},
		},
	})
	if err != nil {
		t.Fatalf("AskAgent: %v", err)
	}
	if resp.Message != "Hello there!" {
		t.Errorf("message = %q", resp.Message)
	}

	if len(m.got) != 4 {
		t.Fatalf("model got %d messages, want 4", len(m.got))
	}
	wantRoles := []schema.RoleType{schema.System, schema.User, schema.Assistant, schema.User}
	for i, role := range wantRoles {
		if m.got[i].Role != role {
			t.Errorf("message %d role = %q, want %q", i, m.got[i].Role, role)
		}
	}
}

func TestAskAgentRequiresIdentity(t *testing.T) {
	l := newAskLogic(context.Background(), activeBiz(), &fakeModel{})

	_, err := l.AskAgent(&types.AskAgentRequest{
		BizId:    "biz_1",
		Messages: []types.ChatMessage{{Role: "user", Content: "hi"}},
	})
	wantCode(t, err, http.StatusUnauthorized)
}

func TestAskAgentRefusesInactiveBusiness(t *testing.T) {
	tests := []struct {
		name string
		bizs *fakeBusinessModel
	}{
		{
			name: "unknown business",
			bizs: &fakeBusinessModel{bizs: map[string]*business.Business{}},
		},
		{
			name: "inactive business",
			bizs: &fakeBusinessModel{bizs: map[string]*business.Business{
				"biz_1": {Id: "biz_1", IsActive: false},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeModel{}
			l := newAskLogic(authedCtx(), tt.bizs, m)

			_, err := l.AskAgent(&types.AskAgentRequest{
				BizId:    "biz_1",
				Messages: []types.ChatMessage{{Role: "user", Content: "hi"}},
			})
			wantCode(t, err, http.StatusForbidden)
			if m.got != nil {
				t.Error("model was called for refused business")
			}
		})
	}
}

func TestAskAgentModelFailure(t *testing.T) {
	l := newAskLogic(authedCtx(), activeBiz(), &fakeModel{err: errors.New("upstream 500")})

	_, err := l.AskAgent(&types.AskAgentRequest{
		BizId:    "biz_1",
		Messages: []types.ChatMessage{{Role: "user", Content: "hi"}},
	})
	wantCode(t, err, http.StatusInternalServerError)
}

func TestAskAgentEmptyCompletionFallsBack(t *testing.T) {
	l := newAskLogic(authedCtx(), activeBiz(),
		&fakeModel{reply: schema.AssistantMessage("  ", nil)})

	resp, err := l.AskAgent(&types.AskAgentRequest{
		BizId:    "biz_1",
		Messages: []types.ChatMessage{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("AskAgent: %v", err)
	}
	if resp.Message != fallbackReply {
		t.Errorf("message = %q, want fallback", resp.Message)
	}
}
