package leadform

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrNotFound = mon.ErrNotFound

var _ LeadFormModel = (*defaultLeadFormModel)(nil)

type (
	// LeadFormModel is a read-only lookup of form display names.
	LeadFormModel interface {
		FindOne(ctx context.Context, businessId, formId string) (*LeadForm, error)
	}

	LeadForm struct {
		Id          string `bson:"_id" json:"id"`
		BusinessId  string `bson:"businessId" json:"businessId"`
		DisplayName string `bson:"displayName,omitempty" json:"displayName"`
	}

	defaultLeadFormModel struct {
		conn *mon.Model
	}
)

func NewLeadFormModel(url, db string) LeadFormModel {
	return &defaultLeadFormModel{conn: mon.MustNewModel(url, db, "leadForms")}
}

func (m *defaultLeadFormModel) FindOne(ctx context.Context, businessId, formId string) (*LeadForm, error) {
	var form LeadForm
	if err := m.conn.FindOne(ctx, &form, bson.M{"_id": formId, "businessId": businessId}); err != nil {
		return nil, err
	}
	return &form, nil
}
