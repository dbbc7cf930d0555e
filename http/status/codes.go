package status

type (
	Code   uint16
	Status string
)

// HTTP status codes as registered with IANA.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	Continue           Code = 100
	SwitchingProtocols Code = 101
	Processing         Code = 102
	EarlyHints         Code = 103

	OK                   Code = 200
	Created              Code = 201
	Accepted             Code = 202
	NonAuthoritativeInfo Code = 203
	NoContent            Code = 204
	ResetContent         Code = 205
	PartialContent       Code = 206

	MultipleChoices   Code = 300
	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	BadRequest                   Code = 400
	Unauthorized                 Code = 401
	PaymentRequired              Code = 402
	Forbidden                    Code = 403
	NotFound                     Code = 404
	MethodNotAllowed             Code = 405
	NotAcceptable                Code = 406
	ProxyAuthRequired            Code = 407
	RequestTimeout               Code = 408
	Conflict                     Code = 409
	Gone                         Code = 410
	LengthRequired               Code = 411
	PreconditionFailed           Code = 412
	RequestEntityTooLarge        Code = 413
	RequestURITooLong            Code = 414
	UnsupportedMediaType         Code = 415
	RequestedRangeNotSatisfiable Code = 416
	ExpectationFailed            Code = 417
	Teapot                       Code = 418
	MisdirectedRequest           Code = 421
	UnprocessableEntity          Code = 422
	UpgradeRequired              Code = 426
	TooManyRequests              Code = 429
	HeaderFieldsTooLarge         Code = 431

	InternalServerError     Code = 500
	NotImplemented          Code = 501
	BadGateway              Code = 502
	ServiceUnavailable      Code = 503
	GatewayTimeout          Code = 504
	HTTPVersionNotSupported Code = 505

	// CloseConnection is a pseudo-code carried by errors which must tear the
	// connection down without any response being rendered.
	CloseConnection Code = 0xffff
)

var texts = map[Code]Status{
	Continue:           "Continue",
	SwitchingProtocols: "Switching Protocols",
	Processing:         "Processing",
	EarlyHints:         "Early Hints",

	OK:                   "OK",
	Created:              "Created",
	Accepted:             "Accepted",
	NonAuthoritativeInfo: "Non-Authoritative Information",
	NoContent:            "No Content",
	ResetContent:         "Reset Content",
	PartialContent:       "Partial Content",

	MultipleChoices:   "Multiple Choices",
	MovedPermanently:  "Moved Permanently",
	Found:             "Found",
	SeeOther:          "See Other",
	NotModified:       "Not Modified",
	TemporaryRedirect: "Temporary Redirect",
	PermanentRedirect: "Permanent Redirect",

	BadRequest:                   "Bad Request",
	Unauthorized:                 "Unauthorized",
	PaymentRequired:              "Payment Required",
	Forbidden:                    "Forbidden",
	NotFound:                     "Not Found",
	MethodNotAllowed:             "Method Not Allowed",
	NotAcceptable:                "Not Acceptable",
	ProxyAuthRequired:            "Proxy Authentication Required",
	RequestTimeout:               "Request Timeout",
	Conflict:                     "Conflict",
	Gone:                         "Gone",
	LengthRequired:               "Length Required",
	PreconditionFailed:           "Precondition Failed",
	RequestEntityTooLarge:        "Request Entity Too Large",
	RequestURITooLong:            "Request URI Too Long",
	UnsupportedMediaType:         "Unsupported Media Type",
	RequestedRangeNotSatisfiable: "Requested Range Not Satisfiable",
	ExpectationFailed:            "Expectation Failed",
	Teapot:                       "I'm a teapot",
	MisdirectedRequest:           "Misdirected Request",
	UnprocessableEntity:          "Unprocessable Entity",
	UpgradeRequired:              "Upgrade Required",
	TooManyRequests:              "Too Many Requests",
	HeaderFieldsTooLarge:         "Request Header Fields Too Large",

	InternalServerError:     "Internal Server Error",
	NotImplemented:          "Not Implemented",
	BadGateway:              "Bad Gateway",
	ServiceUnavailable:      "Service Unavailable",
	GatewayTimeout:          "Gateway Timeout",
	HTTPVersionNotSupported: "HTTP Version Not Supported",
}

// Text returns the reason phrase registered for the code, or an empty string
// for codes it doesn't know about.
func Text(code Code) Status {
	return texts[code]
}
