package constants

// Redis key formats
const (
	KeyUnitLocation = "unit:location:%s" // Format: unit:location:{source_id}
	KeyUnitsGeo     = "units:geo"        // Geo set of all unit positions
	KeyActiveUnits  = "units:active"     // Set of source IDs seen in the current window
)

// Redis hash fields
const (
	FieldLatitude  = "lat"
	FieldLongitude = "lng"
	FieldTimestamp = "ts"
	FieldVoltage   = "voltage"
	FieldStatus    = "status"
	FieldGeohash   = "geohash"
)
