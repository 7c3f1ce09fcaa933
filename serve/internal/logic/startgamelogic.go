package logic

import (
	"context"

	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type StartGameLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewStartGameLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StartGameLogic {
	return &StartGameLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *StartGameLogic) StartGame(req *types.RoomRequest) (*types.RoomResponse, error) {
	table, err := l.svcCtx.Tables.Get(req.RoomID)
	if err != nil {
		return nil, err
	}

	if err = table.Room.Start(l.ctx); err != nil {
		return nil, err
	}

	return NewGetRoomLogic(l.ctx, l.svcCtx).GetRoom(req)
}
