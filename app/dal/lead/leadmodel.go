package lead

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrNotFound = mon.ErrNotFound

var _ LeadModel = (*defaultLeadModel)(nil)

type (
	// LeadModel stores captured form submissions. Leads are written once and
	// never mutated.
	LeadModel interface {
		Insert(ctx context.Context, data *Lead) error
		FindOne(ctx context.Context, id string) (*Lead, error)
	}

	Lead struct {
		Id         string           `bson:"_id" json:"id"`
		BusinessId string           `bson:"businessId" json:"businessId"`
		FormId     string           `bson:"formId,omitempty" json:"formId"`
		Fields     map[string]Value `bson:"fields" json:"fields"`
		CreatedAt  time.Time        `bson:"createdAt" json:"createdAt"`
	}

	defaultLeadModel struct {
		conn *mon.Model
	}
)

func NewLeadModel(url, db string) LeadModel {
	return &defaultLeadModel{conn: mon.MustNewModel(url, db, "leads")}
}

func (m *defaultLeadModel) Insert(ctx context.Context, data *Lead) error {
	_, err := m.conn.InsertOne(ctx, data)
	return err
}

func (m *defaultLeadModel) FindOne(ctx context.Context, id string) (*Lead, error) {
	var l Lead
	if err := m.conn.FindOne(ctx, &l, bson.M{"_id": id}); err != nil {
		return nil, err
	}
	return &l, nil
}
