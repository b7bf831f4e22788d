package workflow

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ActionRequest is a caller's intent to apply Action to the entity EntityID.
type ActionRequest[A ~string] struct {
	EntityID    string
	Action      A
	ActorID     string
	ActorName   string
	Observation string
	Payload     Payload
}

// Payload carries action-specific fields, usually decoded from JSON.
type Payload map[string]any

const dateLayout = "2006-01-02"

// Has reports whether key is present with a non-nil value.
func (p Payload) Has(key string) bool {
	v, ok := p[key]
	return ok && v != nil
}

// String returns the trimmed string at key, or "" when absent or not a string.
func (p Payload) String(key string) string {
	s, ok := p[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// Float returns the number at key. present is false when the key is absent.
// NaN and infinities are rejected.
func (p Payload) Float(key string) (value float64, present bool, err error) {
	if !p.Has(key) {
		return 0, false, nil
	}
	var f float64
	switch v := p[key].(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case json.Number:
		if f, err = v.Float64(); err != nil {
			return 0, true, fmt.Errorf("%w: %s", ErrInvalidPayloadField, key)
		}
	case string:
		if f, err = strconv.ParseFloat(strings.TrimSpace(v), 64); err != nil {
			return 0, true, fmt.Errorf("%w: %s", ErrInvalidPayloadField, key)
		}
	default:
		return 0, true, fmt.Errorf("%w: %s", ErrInvalidPayloadField, key)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, true, fmt.Errorf("%w: %s", ErrInvalidPayloadField, key)
	}
	return f, true, nil
}

// Date returns the date or timestamp at key. Plain dates ("2006-01-02") are read
// as midnight in loc. An empty string counts as absent.
func (p Payload) Date(key string, loc *time.Location) (value time.Time, present bool, err error) {
	if !p.Has(key) {
		return time.Time{}, false, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	switch v := p[key].(type) {
	case time.Time:
		return v.In(loc), true, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, false, nil
		}
		return v.In(loc), true, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false, nil
		}
		if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
			return t, true, nil
		}
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t.In(loc), true, nil
		}
	}
	return time.Time{}, true, fmt.Errorf("%w: %s", ErrInvalidPayloadField, key)
}

// Only returns a copy of p restricted to keys.
func (p Payload) Only(keys []string) Payload {
	out := make(Payload, len(keys))
	for _, k := range keys {
		if v, ok := p[k]; ok {
			out[k] = v
		}
	}
	return out
}

func (p Payload) clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// FieldProjection whitelists, per action, the payload keys the action may write
// onto the entity.
type FieldProjection[A ~string] map[A][]string

// Filter drops every payload key the action is not allowed to set.
func (f FieldProjection[A]) Filter(action A, p Payload) Payload {
	return p.Only(f[action])
}

// StartOfDay truncates t to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
