package logic

import (
	"context"
	"strings"

	"github.com/HuXin0817/connect-corners/serve/internal/room"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/transport"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type CreateRoomLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewCreateRoomLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CreateRoomLogic {
	return &CreateRoomLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *CreateRoomLogic) CreateRoom(req *types.CreateRoomRequest) (*types.CreateRoomResponse, error) {
	tables := l.svcCtx.Tables
	table := tables.Create(func(id string) *svc.Table {
		hub := transport.NewHub()
		name := strings.TrimSpace(req.Name)
		if name == "" {
			name = id
		}

		table := &svc.Table{
			Room: room.New(id, name, hub, room.Options{
				Mover:    l.svcCtx.Mover,
				Recorder: l.svcCtx.Recorder,
				Stats:    l.svcCtx.Stats,
				OnFinish: func() { tables.Reap(id) },
			}),
			Hub: hub,
		}

		session := NewSessionLogic(l.svcCtx, table)
		hub.OnConnect(session.Connect)
		hub.OnMessage(session.Handle)
		hub.OnDisconnect(session.Disconnect)
		return table
	})
	l.Infof("room %s (%s) created", table.Room.ID, table.Room.Name)

	return &types.CreateRoomResponse{
		RoomID:  table.Room.ID,
		GameUid: table.Room.GameUid,
	}, nil
}
