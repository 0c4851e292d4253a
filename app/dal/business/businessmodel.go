package business

import (
	"context"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	mopt "go.mongodb.org/mongo-driver/v2/mongo/options"
)

var ErrNotFound = mon.ErrNotFound

var _ BusinessModel = (*defaultBusinessModel)(nil)

type (
	// BusinessModel is the tenant record owning leads, forms and billing state.
	BusinessModel interface {
		FindOne(ctx context.Context, id string) (*Business, error)
		FindByStripeCustomerId(ctx context.Context, customerId string) ([]*Business, error)
		Activate(ctx context.Context, id, stripeCustomerId string) error
		Deactivate(ctx context.Context, id string) error
	}

	Business struct {
		Id               string `bson:"_id" json:"id"`
		Email            string `bson:"email,omitempty" json:"email"`
		IsActive         bool   `bson:"isActive" json:"isActive"`
		StripeCustomerId string `bson:"stripeCustomerId,omitempty" json:"stripeCustomerId"`
	}

	defaultBusinessModel struct {
		conn *mon.Model
	}
)

func NewBusinessModel(url, db string) BusinessModel {
	return &defaultBusinessModel{conn: mon.MustNewModel(url, db, "businesses")}
}

func (m *defaultBusinessModel) FindOne(ctx context.Context, id string) (*Business, error) {
	var biz Business
	if err := m.conn.FindOne(ctx, &biz, bson.M{"_id": id}); err != nil {
		return nil, err
	}
	return &biz, nil
}

func (m *defaultBusinessModel) FindByStripeCustomerId(ctx context.Context, customerId string) ([]*Business, error) {
	var bizs []*Business
	if err := m.conn.Find(ctx, &bizs, bson.M{"stripeCustomerId": customerId}); err != nil {
		return nil, err
	}
	return bizs, nil
}

// Activate flips the activation flag and stores the payment customer id.
// Upsert keeps the write idempotent: re-applying the same event converges on
// the same document.
func (m *defaultBusinessModel) Activate(ctx context.Context, id, stripeCustomerId string) error {
	update := bson.M{"$set": bson.M{"isActive": true, "stripeCustomerId": stripeCustomerId}}
	_, err := m.conn.UpdateOne(ctx, bson.M{"_id": id}, update, mopt.UpdateOne().SetUpsert(true))
	return err
}

func (m *defaultBusinessModel) Deactivate(ctx context.Context, id string) error {
	_, err := m.conn.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"isActive": false}})
	return err
}
