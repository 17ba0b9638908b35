package constants

// Redis key formats
const (
	KeyPresenceSample = "presence:sample:%s" // Format: presence:sample:{identity}
	KeyPresenceGeo    = "presence:geo"       // GEO set of every mirrored identity
)
