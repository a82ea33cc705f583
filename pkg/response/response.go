// Package response 统一的 API 响应封装。
// 所有接口返回 {message, code, data} 结构，业务状态通过 code 区分，
// 分页列表、菜谱详情等具体内容放在 data 中。
package response

type ResponseCode int

// 统一业务代码
const (
	Success = 100
)

// Response 响应体
type Response struct {
	Message string       `json:"message"`
	Code    ResponseCode `json:"code"`
	Data    any          `json:"data"`
}

type ResponseOptions func(*Response)

func WithMessage(message string) ResponseOptions {
	return func(r *Response) {
		r.Message = message
	}
}

func WithCode(code ResponseCode) ResponseOptions {
	return func(r *Response) {
		r.Code = code
	}
}

func WithData(data any) ResponseOptions {
	return func(r *Response) {
		r.Data = data
	}
}

// CustomResponse 按选项构造响应
func CustomResponse(opts ...ResponseOptions) Response {
	response := Response{}
	for _, opt := range opts {
		opt(&response)
	}
	return response
}

// SuccessResponse 成功响应，code 固定为 Success
func SuccessResponse(data any) Response {
	return Response{
		Message: "success",
		Code:    Success,
		Data:    data,
	}
}

// ErrorResponse 业务错误响应
func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Message: msg,
		Code:    code,
		Data:    nil,
	}
}
