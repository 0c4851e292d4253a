package leads

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"NestorAI/app/api/backend/internal/mq"
	"NestorAI/app/api/backend/internal/svc"
	"NestorAI/app/api/backend/internal/types"
	"NestorAI/app/common/snowflake"
	"NestorAI/app/dal/lead"

	"github.com/segmentio/kafka-go"
	"github.com/zeromicro/go-zero/core/logx"
	xerrors "github.com/zeromicro/x/errors"
)

type SubmitLeadLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewSubmitLeadLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SubmitLeadLogic {
	return &SubmitLeadLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

// SubmitLead stores a captured form submission and publishes the creation
// event that drives the notifier. Storage is the contract with the caller:
// a publish failure is logged, never surfaced.
func (l *SubmitLeadLogic) SubmitLead(req *types.SubmitLeadRequest) (*types.SubmitLeadResponse, error) {
	if req.BizId == "" || len(req.Fields) == 0 {
		return nil, xerrors.New(http.StatusBadRequest, "bizId and fields are required")
	}

	doc := &lead.Lead{
		Id:         strconv.FormatInt(snowflake.Next(), 10),
		BusinessId: req.BizId,
		FormId:     req.FormId,
		Fields:     req.Fields,
		CreatedAt:  time.Now(),
	}
	if err := l.svcCtx.Leads.Insert(l.ctx, doc); err != nil {
		l.Errorw("store lead failed", logx.Field("bizId", req.BizId), logx.Field("err", err))
		return nil, xerrors.New(http.StatusInternalServerError, "failed to store lead")
	}

	l.publishCreated(doc)

	return &types.SubmitLeadResponse{LeadId: doc.Id}, nil
}

func (l *SubmitLeadLogic) publishCreated(doc *lead.Lead) {
	if l.svcCtx.KafkaWriter == nil {
		l.Infof("kafka writer not configured, lead %s stored without notification", doc.Id)
		return
	}

	body, err := json.Marshal(mq.LeadCreatedEvent{
		BusinessId: doc.BusinessId,
		LeadId:     doc.Id,
		FormId:     doc.FormId,
		Fields:     doc.Fields,
	})
	if err != nil {
		l.Errorw("marshal lead event failed", logx.Field("leadId", doc.Id), logx.Field("err", err))
		return
	}

	err = l.svcCtx.KafkaWriter.WriteMessages(l.ctx, kafka.Message{
		Key:   []byte(doc.BusinessId),
		Value: body,
	})
	if err != nil {
		l.Errorw("publish lead event failed", logx.Field("leadId", doc.Id), logx.Field("err", err))
	}
}
