package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message"
	"github.com/HuXin0817/connect-corners/pkg/models/message/moverecord"
	"github.com/HuXin0817/connect-corners/pkg/stats"
	"github.com/HuXin0817/connect-corners/serve/internal/ai"
	"github.com/HuXin0817/connect-corners/serve/internal/config"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	svcCtx := svc.NewTestServiceContext(config.Config{}, ai.NewLocalMover(rand.New(rand.NewSource(1))))
	RegisterHandlers(router, svcCtx)
	return router
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func createRoom(t *testing.T, h http.Handler) types.CreateRoomResponse {
	t.Helper()
	w := do(t, h, http.MethodPost, "/rooms", `{"name":"friday"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.CreateRoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.RoomID)
	return resp
}

func TestCreateAndGetRoom(t *testing.T) {
	router := newRouter()
	created := createRoom(t, router)

	w := do(t, router, http.MethodGet, "/rooms/"+created.RoomID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var room types.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, "friday", room.Name)
	assert.Equal(t, created.GameUid, room.GameUid)
	assert.Nil(t, room.Game)
}

func TestUnknownRoom(t *testing.T) {
	router := newRouter()
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/rooms/nope", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodPost, "/rooms/nope/start", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/rooms/nope/ws", "").Code)
}

func TestCreateRoomRejectsBadBody(t *testing.T) {
	router := newRouter()
	w := do(t, router, http.MethodPost, "/rooms", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStartFillsSeatsWithComputers(t *testing.T) {
	router := newRouter()
	created := createRoom(t, router)

	w := do(t, router, http.MethodPost, "/rooms/"+created.RoomID+"/start", "")
	require.Equal(t, http.StatusOK, w.Code)

	var room types.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	require.Len(t, room.Seats, chess.SeatCount)
	for _, s := range room.Seats {
		assert.False(t, s.IsHuman)
	}
	require.NotNil(t, room.Game)

	w = do(t, router, http.MethodPost, "/rooms/"+created.RoomID+"/start", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestStatsEndpoints(t *testing.T) {
	router := newRouter()

	w := do(t, router, http.MethodGet, "/stats/ann", "")
	require.Equal(t, http.StatusOK, w.Code)
	var s types.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	assert.Equal(t, 0, s.Stats.GamesPlayed)
	assert.Empty(t, s.Achievements)

	w = do(t, router, http.MethodGet, "/stats/ann/colors", "")
	require.Equal(t, http.StatusOK, w.Code)
	var colors types.ColorsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &colors))
	require.Len(t, colors.Colors, len(chess.AllColors))
	for _, c := range colors.Colors {
		_, locked := stats.UnlockRequirement(c.Color)
		assert.Equal(t, !locked, c.Unlocked, c.Color.String())
	}
}

func readUntil(t *testing.T, conn *websocket.Conn, want message.Type, match func(message.Message) bool) message.Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(30*time.Second)))
	for {
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)

		m, err := message.Decode(data)
		require.NoError(t, err)
		if m.Type == want && (match == nil || match(m)) {
			return m
		}
	}
}

func send(t *testing.T, conn *websocket.Conn, typ message.Type, payload any) {
	t.Helper()
	data, err := message.Encode(typ, payload)
	require.NoError(t, err)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, data))
}

func TestWebsocketGuestPlaysAgainstComputers(t *testing.T) {
	router := newRouter()
	server := httptest.NewServer(router)
	defer server.Close()

	created := createRoom(t, router)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/rooms/" + created.RoomID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	send(t, conn, message.Join, message.JoinPayload{Name: "ann", Color: chess.Green})
	var welcome message.WelcomePayload
	require.NoError(t, readUntil(t, conn, message.Welcome, nil).Unmarshal(&welcome))
	assert.Equal(t, 0, welcome.Seat)
	assert.Equal(t, chess.Green, welcome.Color)
	assert.Equal(t, created.GameUid, welcome.GameUid)

	resp, err := http.Post(server.URL+"/rooms/"+created.RoomID+"/start", "application/json", bytes.NewReader(nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	readUntil(t, conn, message.StartGame, nil)

	send(t, conn, message.Move, message.MovePayload{
		PieceID:  "p0",
		Shape:    chess.ParseShape("#"),
		Position: chess.Coordinate{X: 0, Y: 0},
	})

	m := readUntil(t, conn, message.Update, func(m message.Message) bool {
		var u message.UpdatePayload
		return m.Unmarshal(&u) == nil && u.TurnNumber == 5
	})
	var update message.UpdatePayload
	require.NoError(t, m.Unmarshal(&update))
	assert.Equal(t, 0, update.CurrentPlayerIndex)
	assert.Equal(t, chess.Green, update.Board.Owner(0, 0))
	assert.Equal(t, string(welcome.PeerID), update.Players[0].ID)
}

type fakeArchive map[message.GameUid]*moverecord.Replay

func (f fakeArchive) FindReplay(_ context.Context, uid message.GameUid) (*moverecord.Replay, error) {
	if r, c := f[uid]; c {
		return r, nil
	}
	return nil, moverecord.ErrNotFound
}

func TestGameReplay(t *testing.T) {
	router := newRouter()
	assert.Equal(t, http.StatusNotImplemented, do(t, router, http.MethodGet, "/games/abc", "").Code)

	gin.SetMode(gin.TestMode)
	router = gin.New()
	svcCtx := svc.NewTestServiceContext(config.Config{}, ai.NewLocalMover(rand.New(rand.NewSource(1))))
	svcCtx.Archive = fakeArchive{
		"abc": {
			Start: &moverecord.GameStartRecode{GameUid: "abc", BoardSize: chess.BoardSize},
			Moves: []*moverecord.MoveRecode{{GameUid: "abc", TurnNumber: 1, PieceID: "p0"}},
		},
	}
	RegisterHandlers(router, svcCtx)

	w := do(t, router, http.MethodGet, "/games/abc", "")
	require.Equal(t, http.StatusOK, w.Code)
	var replay moverecord.Replay
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &replay))
	require.Len(t, replay.Moves, 1)
	assert.Nil(t, replay.End)

	assert.Equal(t, http.StatusNotFound, do(t, router, http.MethodGet, "/games/zzz", "").Code)
}
