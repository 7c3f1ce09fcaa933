package logic

import (
	"context"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/transport"
	"github.com/zeromicro/go-zero/core/logx"
)

// SessionLogic answers the messages peers send to one room.
type SessionLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	table  *svc.Table
	logx.Logger
}

func NewSessionLogic(svcCtx *svc.ServiceContext, table *svc.Table) *SessionLogic {
	ctx := logx.ContextWithFields(context.Background(), logx.Field("room", table.Room.ID))
	return &SessionLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		table:  table,
		Logger: logx.WithContext(ctx),
	}
}

// Connect shows a late peer the game in progress.
func (l *SessionLogic) Connect(p *transport.Peer) {
	l.Infof("peer %s connected", p.ID)
	if g := l.table.Room.Snapshot(); g != nil {
		l.table.Room.Send(p.ID, message.Update, message.NewUpdatePayload(g))
	}
}

func (l *SessionLogic) Disconnect(p *transport.Peer) {
	l.Infof("peer %s disconnected", p.ID)
	l.table.Room.Leave(l.ctx, p.ID)
}

// Handle applies one peer message. Rejected moves and passes are dropped;
// the peer keeps the last UPDATE it received.
func (l *SessionLogic) Handle(p *transport.Peer, m message.Message) {
	switch m.Type {
	case message.Join:
		l.join(p, m)
	case message.Move:
		var payload message.MovePayload
		if err := m.Unmarshal(&payload); err != nil {
			l.Infof("peer %s: %v", p.ID, err)
			return
		}
		if err := l.table.Room.Place(l.ctx, p.ID, payload); err != nil {
			l.Infof("peer %s move rejected: %v", p.ID, err)
		}
	case message.Pass:
		var payload message.PassPayload
		if err := m.Unmarshal(&payload); err != nil {
			l.Infof("peer %s: %v", p.ID, err)
			return
		}
		if err := l.table.Room.Pass(l.ctx, p.ID, payload); err != nil {
			l.Infof("peer %s pass rejected: %v", p.ID, err)
		}
	default:
		l.Infof("peer %s sent %s, ignored", p.ID, m.Type)
	}
}

func (l *SessionLogic) join(p *transport.Peer, m message.Message) {
	var payload message.JoinPayload
	if err := m.Unmarshal(&payload); err != nil {
		l.Infof("peer %s: %v", p.ID, err)
		return
	}

	seat, err := l.table.Room.Join(l.ctx, p.ID, payload.Name, payload.Color)
	if err != nil {
		l.Infof("peer %s cannot join: %v", p.ID, err)
		l.table.Room.Send(p.ID, message.Error, message.ErrorPayload{Reason: err.Error()})
		return
	}

	color := chess.NoColor
	if seats := l.table.Room.Seats(); seat < len(seats) {
		color = seats[seat].Color
	}
	l.Infof("peer %s (%s) took seat %d as %s", p.ID, payload.Name, seat, color)
	l.table.Room.Send(p.ID, message.Welcome, message.WelcomePayload{
		PeerID:  p.ID,
		Seat:    seat,
		Color:   color,
		GameUid: l.table.Room.GameUid,
	})
}
