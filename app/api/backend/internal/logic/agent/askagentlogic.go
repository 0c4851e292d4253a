package agent

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"NestorAI/app/api/backend/internal/svc"
	"NestorAI/app/api/backend/internal/types"
	"NestorAI/app/common/util"
	"NestorAI/app/dal/business"

	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type AskAgentLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	model  ChatModel
	logx.Logger
}

func NewAskAgentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AskAgentLogic {
	l := &AskAgentLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
	// nil interface check must not see a typed nil
	if svcCtx.ChatModel != nil {
		l.model = svcCtx.ChatModel
	}
	return l
}

// AskAgent relays a conversation to the model on behalf of an active
// business. Inactive or unknown businesses are refused before any model
// call is made.
func (l *AskAgentLogic) AskAgent(req *types.AskAgentRequest) (*types.AskAgentResponse, error) {
	if _, err := util.IdentityFromCtx(l.ctx); err != nil {
		return nil, err
	}
	if req.BizId == "" || len(req.Messages) == 0 {
		return nil, xerrors.New(http.StatusBadRequest, "bizId and messages are required")
	}

	biz, err := l.svcCtx.Businesses.FindOne(l.ctx, req.BizId)
	if err != nil {
		if errors.Is(err, business.ErrNotFound) {
			return nil, xerrors.New(http.StatusForbidden, "Unauthorized or inactive business")
		}
		l.Errorw("business lookup failed", logx.Field("bizId", req.BizId), logx.Field("err", err))
		return nil, xerrors.New(http.StatusInternalServerError, "Failed to process request")
	}
	if !biz.IsActive {
		return nil, xerrors.New(http.StatusForbidden, "Unauthorized or inactive business")
	}

	if l.model == nil {
		return nil, xerrors.New(http.StatusInternalServerError, "Failed to process request")
	}

	out, err := l.model.Generate(l.ctx, convertMessages(req.Messages))
	if err != nil {
		l.Errorw("chat completion failed", logx.Field("bizId", req.BizId), logx.Field("err", err))
		return nil, xerrors.New(http.StatusInternalServerError, "Failed to process request")
	}

	reply := fallbackReply
	if out != nil && strings.TrimSpace(out.Content) != "" {
		reply = strings.TrimSpace(out.Content)
	}
	return &types.AskAgentResponse{Message: reply}, nil
}

func convertMessages(msgs []types.ChatMessage) []*schema.Message {
	out := make([]*schema.Message, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case "system":
			out = append(out, schema.SystemMessage(m.Content))
		case "assistant":
			out = append(out, schema.AssistantMessage(m.Content, nil))
		default:
			out = append(out, schema.UserMessage(m.Content))
		}
	}
	return out
}
