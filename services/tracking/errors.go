package tracking

import "errors"

// ErrNoLocation marks the absence of location data for a unit. Callers must
// treat it as "nothing recorded yet", not as an operation failure.
var ErrNoLocation = errors.New("no location data for unit")

// ErrUnitNotFound is returned when a source ID is not part of the fleet
var ErrUnitNotFound = errors.New("unit not found")
