package models

import (
	"encoding/json"
	"time"
)

// AlertLocation is the lat/lng pair carried by panic alerts
type AlertLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PanicAlertRequest is what a client sends with a panic-alert event.
// The service treats it as opaque: fields it does not know are kept in Extra and
// relayed as they came, and a field that cannot be read is dropped rather than
// failing the alert.
type PanicAlertRequest struct {
	Type                string
	Location            AlertLocation
	Timestamp           *time.Time
	DeclaredSafetyScore *float64
	Extra               map[string]json.RawMessage
}

// UnmarshalJSON decodes any JSON object; only a non-object payload is an error
func (r *PanicAlertRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*r = PanicAlertRequest{}
	for key, raw := range fields {
		switch key {
		case "type":
			_ = json.Unmarshal(raw, &r.Type)
		case "location":
			var loc AlertLocation
			if json.Unmarshal(raw, &loc) == nil {
				r.Location = loc
			}
		case "timestamp":
			r.Timestamp = ParseClientTime(raw)
		case "declaredSafetyScore", "safetyScore":
			var score float64
			if json.Unmarshal(raw, &score) == nil {
				r.DeclaredSafetyScore = &score
			}
		default:
			if r.Extra == nil {
				r.Extra = make(map[string]json.RawMessage)
			}
			r.Extra[key] = raw
		}
	}
	return nil
}

// PanicAlert is the re-emitted alert, tagged with the sender and a server timestamp.
// Extra holds client fields relayed untouched; the named fields win on a clash.
type PanicAlert struct {
	TouristID           string                     `json:"touristId"`
	UserID              string                     `json:"userId,omitempty"`
	Type                string                     `json:"type"`
	Location            AlertLocation              `json:"location"`
	Timestamp           time.Time                  `json:"timestamp"`
	ClientTimestamp     *time.Time                 `json:"clientTimestamp,omitempty"`
	DeclaredSafetyScore *float64                   `json:"declaredSafetyScore,omitempty"`
	Extra               map[string]json.RawMessage `json:"-"`
}

// MarshalJSON writes the named fields merged over Extra
func (a PanicAlert) MarshalJSON() ([]byte, error) {
	type plain PanicAlert
	known, err := json.Marshal(plain(a))
	if err != nil || len(a.Extra) == 0 {
		return known, err
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(known, &fields); err != nil {
		return nil, err
	}
	merged := make(map[string]json.RawMessage, len(a.Extra)+len(fields))
	for key, raw := range a.Extra {
		merged[key] = raw
	}
	for key, raw := range fields {
		merged[key] = raw
	}
	return json.Marshal(merged)
}

// AlertTypePanic is the default alert type
const AlertTypePanic = "panic"
