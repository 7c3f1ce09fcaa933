package logic

import (
	"context"

	"github.com/HuXin0817/connect-corners/pkg/models/message/moverecord"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type GetGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGetGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetGameLogic {
	return &GetGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *GetGameLogic) GetGame(req *types.GameRequest) (*moverecord.Replay, error) {
	if l.svcCtx.Archive == nil {
		return nil, svc.ErrRecordingDisabled
	}

	replay, err := l.svcCtx.Archive.FindReplay(l.ctx, req.GameUid)
	if err != nil {
		return nil, err
	}
	l.Infof("replay %s with %d moves", req.GameUid, len(replay.Moves))
	return replay, nil
}
