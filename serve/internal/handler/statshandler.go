package handler

import (
	"net/http"

	"github.com/HuXin0817/connect-corners/serve/internal/logic"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func GetStatsHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.StatsRequest
		if err := c.ShouldBindUri(&req); err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		l := logic.NewGetStatsLogic(c.Request.Context(), svcCtx)
		resp, err := l.GetStats(&req)
		respond(c, resp, err)
	}
}

func GetColorsHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.StatsRequest
		if err := c.ShouldBindUri(&req); err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		l := logic.NewGetStatsLogic(c.Request.Context(), svcCtx)
		resp, err := l.GetColors(&req)
		respond(c, resp, err)
	}
}
