package types

import (
	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/pkg/stats"
	"github.com/HuXin0817/connect-corners/serve/internal/room"
)

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type CreateRoomResponse struct {
	RoomID  string          `json:"roomId"`
	GameUid message.GameUid `json:"gameUid"`
}

type RoomRequest struct {
	RoomID string `uri:"id" binding:"required"`
}

type RoomResponse struct {
	RoomID    string                 `json:"roomId"`
	Name      string                 `json:"name"`
	GameUid   message.GameUid        `json:"gameUid"`
	Seats     []room.Seat            `json:"seats"`
	Game      *message.UpdatePayload `json:"game,omitempty"`
	Standings []chess.Standing       `json:"standings,omitempty"`
}

type StatsRequest struct {
	Name string `uri:"name" binding:"required"`
}

type StatsResponse struct {
	Name         string              `json:"name"`
	Stats        stats.PlayerStats   `json:"stats"`
	Achievements []stats.Achievement `json:"achievements"`
}

type ColorAvailability struct {
	Color    chess.Color         `json:"color"`
	Unlocked bool                `json:"unlocked"`
	Requires stats.AchievementID `json:"requires,omitempty"`
}

type ColorsResponse struct {
	Name   string              `json:"name"`
	Colors []ColorAvailability `json:"colors"`
}

type GameRequest struct {
	GameUid message.GameUid `uri:"uid" binding:"required"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
