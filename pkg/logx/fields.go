package logx

const (
	FieldAppVersion      = "app-version"
	FieldCandidate       = "candidate"
	FieldDurationMs      = "duration-ms"
	FieldError           = "error"
	FieldHotelID         = "hotel-id"
	FieldHTTPMethod      = "http-method"
	FieldHTTPRequest     = "http-request"
	FieldHTTPResponse    = "http-response"
	FieldIP              = "ip"
	FieldOrganization    = "organization"
	FieldOutcome         = "outcome"
	FieldRecords         = "records"
	FieldRequestBody     = "request-body"
	FieldRequestID       = "request-id"
	FieldResponseBody    = "response-body"
	FieldResponseHeaders = "response-headers"
	FieldResponseStatus  = "response-status"
	FieldScreenID        = "screen-id"
	FieldSections        = "sections"
	FieldStack           = "stack"
	FieldTraceID         = "trace-id"
	FieldURL             = "url"
)
