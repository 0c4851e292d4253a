package agent

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"NestorAI/app/api/backend/internal/svc"
	"NestorAI/app/api/backend/internal/types"

	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type AiChatLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	model  ChatModel
	logx.Logger
}

func NewAiChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AiChatLogic {
	l := &AiChatLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
	if svcCtx.ChatModel != nil {
		l.model = svcCtx.ChatModel
	}
	return l
}

// AiChat answers a single visitor prompt, grounded on the business profile
// embedded in the request. This endpoint is public: the widget calls it
// before the visitor has any account.
func (l *AiChatLogic) AiChat(req *types.AiChatRequest) (*types.AiChatResponse, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, xerrors.New(http.StatusBadRequest, "prompt is required")
	}
	if l.model == nil {
		return nil, xerrors.New(http.StatusInternalServerError, "Failed to process request")
	}

	out, err := l.model.Generate(l.ctx, []*schema.Message{
		schema.SystemMessage(buildSystemPrompt(req.Biz)),
		schema.UserMessage(req.Prompt),
	})
	if err != nil {
		l.Errorw("chat completion failed", logx.Field("err", err))
		return nil, xerrors.New(http.StatusInternalServerError, "Failed to process request")
	}

	reply := fallbackReply
	if out != nil && strings.TrimSpace(out.Content) != "" {
		reply = strings.TrimSpace(out.Content)
	}
	return &types.AiChatResponse{Reply: reply}, nil
}

func buildSystemPrompt(biz types.BizProfile) string {
	name := strings.TrimSpace(biz.Name)
	if name == "" {
		name = "this business"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "You are the friendly AI assistant for %s. ", name)
	sb.WriteString("Answer on the business's behalf using only the profile below. ")
	sb.WriteString("If you cannot help, invite the visitor to leave their contact details.\n")

	for _, line := range []struct{ label, val string }{
		{"About", biz.Description},
		{"Services", biz.Services},
		{"Hours", biz.Hours},
		{"Location", biz.Location},
		{"Phone", biz.Phone},
	} {
		if strings.TrimSpace(line.val) != "" {
			fmt.Fprintf(&sb, "%s: %s\n", line.label, strings.TrimSpace(line.val))
		}
	}
	return sb.String()
}
