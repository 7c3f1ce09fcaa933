package pprof

import (
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/zeromicro/go-zero/core/logx"
)

// Router serves the runtime profiles under /debug/pprof.
func Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	pprof.Register(router)
	return router
}

// Start serves the profiles on addr in the background. An empty addr
// disables it.
func Start(addr string) {
	if addr == "" {
		return
	}

	go func() {
		logx.Infof("pprof listening on %s", addr)
		if err := Router().Run(addr); err != nil {
			logx.Errorf("pprof stopped: %v", err)
		}
	}()
}
