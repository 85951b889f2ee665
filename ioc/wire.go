//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/yapee/internal/address"
	"github.com/ecodeclub/yapee/internal/cart"
	"github.com/ecodeclub/yapee/internal/checkout"
	"github.com/ecodeclub/yapee/internal/coupon"
	"github.com/ecodeclub/yapee/internal/order"
	"github.com/ecodeclub/yapee/internal/product"
	"github.com/ecodeclub/yapee/internal/shipping"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		product.InitService,
		shipping.InitService,
		coupon.InitService,
		cart.InitModule,
		wire.FieldsOf(new(*cart.Module), "Hdl", "Svc"),
		address.InitModule,
		wire.FieldsOf(new(*address.Module), "Hdl", "Svc"),
		order.InitModule,
		wire.FieldsOf(new(*order.Module), "Hdl", "AdminHdl", "Svc"),
		checkout.InitModule,
		wire.FieldsOf(new(*checkout.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
