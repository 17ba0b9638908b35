package constants

// WebSocket event types
const (
	// Common events
	EventError     = "error"
	EventPing      = "ping"
	EventPong      = "pong"
	EventConnected = "connected"

	// Presence events
	EventSubmitLocation   = "submit-location"
	EventLocationUpdate   = "location-update"
	EventSnapshotRequest  = "snapshot-request"
	EventSnapshotResponse = "snapshot-response"
	EventIdentityLeft     = "identity-left"
	EventPanicAlert       = "panic-alert"
)

// WebSocket error codes
const (
	ErrorInvalidFormat  = "invalid_format"
	ErrorUnknownEvent   = "unknown_event"
	ErrorUnauthorized   = "unauthorized"
	ErrorInternalError  = "internal_error"
	ErrorServiceStopped = "service_stopped"
)

// ErrorSeverity classifies how much detail an error may reveal to a client
type ErrorSeverity int

const (
	// ErrorSeverityClient errors are caused by the sender and are echoed back verbatim
	ErrorSeverityClient ErrorSeverity = iota
	// ErrorSeverityServer errors are logged and reported without detail
	ErrorSeverityServer
)
