package response

// 错误码与 HTTP 状态码保持一致，成功时业务码为 0
const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeInternal        = 500
	CodeUnavailable     = 503
)
