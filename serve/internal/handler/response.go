package handler

import (
	"errors"
	"net/http"

	"github.com/HuXin0817/connect-corners/pkg/models/chess"
	"github.com/HuXin0817/connect-corners/pkg/models/message/moverecord"
	"github.com/HuXin0817/connect-corners/pkg/stats"
	"github.com/HuXin0817/connect-corners/serve/internal/room"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func statusOf(err error) int {
	switch {
	case errors.Is(err, svc.ErrRoomNotFound), errors.Is(err, moverecord.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, svc.ErrRecordingDisabled):
		return http.StatusNotImplemented
	case errors.Is(err, room.ErrAlreadyStarted), errors.Is(err, chess.ErrNotLobby):
		return http.StatusConflict
	case errors.Is(err, stats.ErrEmptyName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func fail(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, types.ErrorResponse{Error: err.Error()})
}

func respond(c *gin.Context, resp any, err error) {
	if err != nil {
		fail(c, statusOf(err), err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
