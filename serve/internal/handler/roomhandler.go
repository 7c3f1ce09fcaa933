package handler

import (
	"net/http"

	"github.com/HuXin0817/connect-corners/serve/internal/logic"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

func CreateRoomHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateRoomRequest
		if c.Request.ContentLength != 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				fail(c, http.StatusBadRequest, err)
				return
			}
		}

		l := logic.NewCreateRoomLogic(c.Request.Context(), svcCtx)
		resp, err := l.CreateRoom(&req)
		respond(c, resp, err)
	}
}

func GetRoomHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RoomRequest
		if err := c.ShouldBindUri(&req); err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		l := logic.NewGetRoomLogic(c.Request.Context(), svcCtx)
		resp, err := l.GetRoom(&req)
		respond(c, resp, err)
	}
}

func StartGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RoomRequest
		if err := c.ShouldBindUri(&req); err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		l := logic.NewStartGameLogic(c.Request.Context(), svcCtx)
		resp, err := l.StartGame(&req)
		respond(c, resp, err)
	}
}

// JoinRoomHandler upgrades to a websocket; the peer takes a seat by sending
// JOIN.
func JoinRoomHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RoomRequest
		if err := c.ShouldBindUri(&req); err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		table, err := svcCtx.Tables.Get(req.RoomID)
		if err != nil {
			fail(c, statusOf(err), err)
			return
		}

		if err = table.Hub.Serve(c.Writer, c.Request); err != nil {
			logx.WithContext(c.Request.Context()).Infof("websocket for room %s: %v", req.RoomID, err)
		}
	}
}
