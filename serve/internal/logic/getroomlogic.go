package logic

import (
	"context"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type GetRoomLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGetRoomLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetRoomLogic {
	return &GetRoomLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *GetRoomLogic) GetRoom(req *types.RoomRequest) (*types.RoomResponse, error) {
	table, err := l.svcCtx.Tables.Get(req.RoomID)
	if err != nil {
		return nil, err
	}

	resp := &types.RoomResponse{
		RoomID:  table.Room.ID,
		Name:    table.Room.Name,
		GameUid: table.Room.GameUid,
		Seats:   table.Room.Seats(),
	}

	if g := table.Room.Snapshot(); g != nil {
		update := message.NewUpdatePayload(g)
		resp.Game = &update
		if g.Status == chess.Finished {
			resp.Standings = g.Standings()
		}
	}
	return resp, nil
}
