package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/yapee/internal/address"
	"github.com/ecodeclub/yapee/internal/cart"
	"github.com/ecodeclub/yapee/internal/checkout"
	"github.com/ecodeclub/yapee/internal/order"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	cartHdl *cart.Handler,
	addressHdl *address.Handler,
	checkoutHdl *checkout.Handler,
	orderHdl *order.Handler,
	orderAdminHdl *order.AdminHandler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "yapee.vn")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	cartHdl.PrivateRoutes(res.Engine)
	addressHdl.PrivateRoutes(res.Engine)
	checkoutHdl.PrivateRoutes(res.Engine)
	orderHdl.PrivateRoutes(res.Engine)
	orderAdminHdl.RegisterRoutes(res.Engine)
	return res
}
