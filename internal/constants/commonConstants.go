package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "OK"
	APIStatusError APIStatus = "Error"
)

const (
	HeaderAPIKey    = "X-API-Key"
	HeaderRequestID = "X-Request-ID"
	HeaderUsername  = "X-Operator-Id"
)
