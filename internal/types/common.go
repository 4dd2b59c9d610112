package types

// HTTP Header Constants
const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	HeaderRealIP      = "X-Real-IP"
	HeaderOrigin      = "Origin"
)

// Content types accepted by the contact endpoint
const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
)

// Runtime modes
const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)
