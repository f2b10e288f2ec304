package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	EventLocationUpdate  = "location_update"
	EventBatteryCritical = "battery_critical"
	EventFleetRefreshed  = "fleet_refreshed"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)
