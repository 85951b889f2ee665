package errs

type ErrorCode struct {
	Code int
	Msg  string
}

var (
	SystemError = ErrorCode{Code: 515001, Msg: "系统错误"}
	EmptyCart   = ErrorCode{Code: 515002, Msg: "购物车为空"}
	// AddressNotFound 引用的收货地址不存在或不属于当前用户
	AddressNotFound = ErrorCode{Code: 515004, Msg: "收货地址不存在"}
	DuplicateSubmit = ErrorCode{Code: 515005, Msg: "重复提交"}
)

// NewValidationErr 提交校验失败,原样透出给调用方修正
func NewValidationErr(err error) ErrorCode {
	return ErrorCode{Code: 515003, Msg: err.Error()}
}
