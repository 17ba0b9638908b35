package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field type alias so callers need not import zap
type Field = zap.Field

// String constructs a field that carries a string value
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err constructs a field that carries an error
func Err(err error) Field {
	return zap.Error(err)
}

// Int constructs a field that carries an int value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Uint32 constructs a field that carries a uint32 value
func Uint32(key string, val uint32) Field {
	return zap.Uint32(key, val)
}

// Bool constructs a field that carries a boolean value
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any constructs a field that carries an arbitrary value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration constructs a field that carries a time.Duration value
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// Identity tags an entry with the presence identity it concerns
func Identity(id string) Field {
	return zap.String("identity", id)
}

// Cell tags an entry with a geohash cell
func Cell(hash string) Field {
	return zap.String("cell", hash)
}

// Position groups a coordinate pair under "position"
func Position(lat, lng float64) Field {
	return zap.Dict("position", zap.Float64("lat", lat), zap.Float64("lng", lng))
}
