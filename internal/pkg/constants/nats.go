package constants

// NATS Subjects
const (
	// Published by the tracking service
	SubjectLocationUpdated = "location.updated"
	SubjectBatteryCritical = "unit.battery.critical"
	SubjectFleetRefreshed  = "fleet.refreshed"

	// Consumed by the tracking service
	SubjectObservationIngest = "observation.ingest"
)

// Queue groups
const (
	QueueGroupTracking = "tracking"
)
