package logic

import (
	"context"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/stats"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/zeromicro/go-zero/core/logx"
)

type GetStatsLogic struct {
	ctx    context.Context
	svcCtx *svc.ServiceContext
	logx.Logger
}

func NewGetStatsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *GetStatsLogic {
	return &GetStatsLogic{
		ctx:    ctx,
		svcCtx: svcCtx,
		Logger: logx.WithContext(ctx),
	}
}

func (l *GetStatsLogic) GetStats(req *types.StatsRequest) (*types.StatsResponse, error) {
	s, err := l.svcCtx.Stats.Get(l.ctx, req.Name)
	if err != nil {
		return nil, err
	}

	resp := &types.StatsResponse{
		Name:         req.Name,
		Stats:        s,
		Achievements: []stats.Achievement{},
	}
	for _, id := range s.UnlockedAchievements {
		if a, c := stats.FindAchievement(id); c {
			resp.Achievements = append(resp.Achievements, a)
		}
	}
	return resp, nil
}

func (l *GetStatsLogic) GetColors(req *types.StatsRequest) (*types.ColorsResponse, error) {
	s, err := l.svcCtx.Stats.Get(l.ctx, req.Name)
	if err != nil {
		return nil, err
	}

	resp := &types.ColorsResponse{Name: req.Name}
	for _, color := range chess.AllColors {
		requires, _ := stats.UnlockRequirement(color)
		resp.Colors = append(resp.Colors, types.ColorAvailability{
			Color:    color,
			Unlocked: stats.Unlocked(s, color),
			Requires: requires,
		})
	}
	return resp, nil
}
