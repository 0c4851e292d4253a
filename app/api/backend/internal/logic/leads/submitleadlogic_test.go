package leads

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"NestorAI/app/api/backend/internal/svc"
	"NestorAI/app/api/backend/internal/types"
	"NestorAI/app/dal/lead"

	xerrors "github.com/zeromicro/x/errors"
)

type fakeLeadModel struct {
	inserted []*lead.Lead
	err      error
}

func (f *fakeLeadModel) Insert(_ context.Context, data *lead.Lead) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, data)
	return nil
}

func (f *fakeLeadModel) FindOne(context.Context, string) (*lead.Lead, error) {
	return nil, lead.ErrNotFound
}

func strp(s string) *string { return &s }

func TestSubmitLeadStoresDocument(t *testing.T) {
	store := &fakeLeadModel{}
	l := NewSubmitLeadLogic(context.Background(), &svc.ServiceContext{Leads: store})

	resp, err := l.SubmitLead(&types.SubmitLeadRequest{
		BizId:  "biz_1",
		FormId: "form_1",
		Fields: map[string]lead.Value{
			"name": {String: strp("Jo")},
		},
	})
	if err != nil {
		t.Fatalf("SubmitLead: %v", err)
	}
	if resp.LeadId == "" {
		t.Fatal("empty lead id")
	}

	if len(store.inserted) != 1 {
		t.Fatalf("inserted %d docs, want 1", len(store.inserted))
	}
	doc := store.inserted[0]
	if doc.Id != resp.LeadId || doc.BusinessId != "biz_1" || doc.FormId != "form_1" {
		t.Errorf("doc = %+v", doc)
	}
	if doc.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
}

func TestSubmitLeadValidation(t *testing.T) {
	l := NewSubmitLeadLogic(context.Background(), &svc.ServiceContext{Leads: &fakeLeadModel{}})

	tests := []*types.SubmitLeadRequest{
		{BizId: "", Fields: map[string]lead.Value{"name": {String: strp("Jo")}}},
		{BizId: "biz_1"},
	}
	for _, req := range tests {
		_, err := l.SubmitLead(req)
		var cm *xerrors.CodeMsg
		if !errors.As(err, &cm) || cm.Code != http.StatusBadRequest {
			t.Errorf("req %+v: err = %v, want 400", req, err)
		}
	}
}

func TestSubmitLeadStoreFailure(t *testing.T) {
	store := &fakeLeadModel{err: errors.New("mongo down")}
	l := NewSubmitLeadLogic(context.Background(), &svc.ServiceContext{Leads: store})

	_, err := l.SubmitLead(&types.SubmitLeadRequest{
		BizId:  "biz_1",
		Fields: map[string]lead.Value{"name": {String: strp("Jo")}},
	})
	var cm *xerrors.CodeMsg
	if !errors.As(err, &cm) || cm.Code != http.StatusInternalServerError {
		t.Fatalf("err = %v, want 500", err)
	}
}
