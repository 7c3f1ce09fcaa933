package handler

import (
	"net/http"

	"github.com/HuXin0817/connect-corners/serve/internal/logic"
	"github.com/HuXin0817/connect-corners/serve/internal/svc"
	"github.com/HuXin0817/connect-corners/serve/internal/types"
	"github.com/gin-gonic/gin"
)

func GetGameHandler(svcCtx *svc.ServiceContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GameRequest
		if err := c.ShouldBindUri(&req); err != nil {
			fail(c, http.StatusBadRequest, err)
			return
		}

		l := logic.NewGetGameLogic(c.Request.Context(), svcCtx)
		resp, err := l.GetGame(&req)
		respond(c, resp, err)
	}
}
