package errs

var (
	SystemError     = ErrorCode{Code: 513001, Msg: "系统错误"}
	AddressNotFound = ErrorCode{Code: 513002, Msg: "收货地址不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}

func NewInvalidAddressErr(err error) ErrorCode {
	return ErrorCode{Code: 513003, Msg: err.Error()}
}
