package errs

type ErrorCode struct {
	Code int
	Msg  string
}

var (
	SystemError = ErrorCode{Code: 514001, Msg: "系统错误"}
	// OrderNotFound 订单不存在或不属于当前用户
	OrderNotFound = ErrorCode{Code: 514002, Msg: "订单不存在"}
	// OrderNotCancellable 已发货或已完成的订单不允许取消
	OrderNotCancellable = ErrorCode{Code: 514003, Msg: "not cancellable in current status"}
	ReasonRequired      = ErrorCode{Code: 514004, Msg: "取消订单必须填写原因"}
	InvalidTransition   = ErrorCode{Code: 514005, Msg: "订单状态流转非法"}
)
