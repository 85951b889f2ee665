package errs

var (
	SystemError     = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidQuantity = ErrorCode{Code: 512002, Msg: "商品数量非法"}
	LineNotFound    = ErrorCode{Code: 512003, Msg: "购物车中不存在该商品"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
