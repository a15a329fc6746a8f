package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/jobreview/internal/ai"
	"github.com/ecodeclub/jobreview/internal/forum"
	"github.com/ecodeclub/jobreview/internal/interactive"
	"github.com/ecodeclub/jobreview/internal/pkg/middleware"
	"github.com/ecodeclub/jobreview/internal/recommendation"
	"github.com/ecodeclub/jobreview/internal/review"
	"github.com/ecodeclub/jobreview/internal/search"
	"github.com/ecodeclub/jobreview/internal/stats"
	"github.com/ecodeclub/jobreview/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	userHdl *user.Handler,
	reviewHdl *review.Handler,
	forumHdl *forum.Handler,
	intrHdl *interactive.Handler,
	recHdl *recommendation.Handler,
	statsHdl *stats.Handler,
	searchHdl *search.Handler,
	aiHdl *ai.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(middleware.NewMetricsBuilder().Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.Contains(origin, "jobreview.cn")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	reviewHdl.PublicRoutes(res.Engine)
	forumHdl.PublicRoutes(res.Engine)
	intrHdl.PublicRoutes(res.Engine)
	recHdl.PublicRoutes(res.Engine)
	statsHdl.PublicRoutes(res.Engine)
	searchHdl.PublicRoutes(res.Engine)
	aiHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userHdl.PrivateRoutes(res.Engine)
	reviewHdl.PrivateRoutes(res.Engine)
	forumHdl.PrivateRoutes(res.Engine)
	intrHdl.PrivateRoutes(res.Engine)
	recHdl.PrivateRoutes(res.Engine)
	statsHdl.PrivateRoutes(res.Engine)
	searchHdl.PrivateRoutes(res.Engine)
	aiHdl.PrivateRoutes(res.Engine)
	return res
}
