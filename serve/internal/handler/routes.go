package handler

import (
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/gin-gonic/gin"
)

func RegisterHandlers(router *gin.Engine, serverCtx *svc.ServiceContext) {
	rooms := router.Group("/rooms")
	rooms.POST("", CreateRoomHandler(serverCtx))
	rooms.GET("/:id", GetRoomHandler(serverCtx))
	rooms.POST("/:id/start", StartGameHandler(serverCtx))
	rooms.GET("/:id/ws", JoinRoomHandler(serverCtx))

	router.GET("/games/:uid", GetGameHandler(serverCtx))

	players := router.Group("/stats")
	players.GET("/:name", GetStatsHandler(serverCtx))
	players.GET("/:name/colors", GetColorsHandler(serverCtx))
}
