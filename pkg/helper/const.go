package helper

const (
	// TimeFormatLogger const
	TimeFormatLogger = "2006/01/02 15:04:05"

	// WORKDIR const for workdir environment
	WORKDIR = "WORKDIR"

	// HeaderContentType const
	HeaderContentType = "Content-Type"
	// HeaderMIMEApplicationJSON const
	HeaderMIMEApplicationJSON = "application/json"
	// HeaderXRequestID const
	HeaderXRequestID = "X-Request-Id"
	// HeaderDisableTrace const
	HeaderDisableTrace = "X-Disable-Trace"
)
