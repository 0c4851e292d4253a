package agent

import (
	"context"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// fallbackReply goes out whenever the model yields an empty completion.
const fallbackReply = "Sorry, I couldn't respond."

// ChatModel is the slice of the completion client the relay needs.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error)
}
