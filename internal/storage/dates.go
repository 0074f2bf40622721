package storage

import (
	"bytes"
	"encoding/json"
)

// Writes always encode dates as bare RFC3339 strings (Go's native time.Time
// JSON form). An earlier persistence variant instead wrapped dates in
// tagged objects: {"__type":"Date","value":"<iso>"}. normalizeDates rewrites
// that legacy form into the canonical one before decoding, so old data
// stays readable. It is a no-op for canonical input.

var legacyDateTag = []byte(`"__type"`)

func normalizeDates(data []byte) []byte {
	if !bytes.Contains(data, legacyDateTag) {
		return data
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return data
	}
	out, err := json.Marshal(stripDateTags(v))
	if err != nil {
		return data
	}
	return out
}

func stripDateTags(v any) any {
	switch t := v.(type) {
	case map[string]any:
		if len(t) == 2 {
			if kind, ok := t["__type"].(string); ok && kind == "Date" {
				if iso, ok := t["value"].(string); ok {
					return iso
				}
			}
		}
		for k, elem := range t {
			t[k] = stripDateTags(elem)
		}
	case []any:
		for i, elem := range t {
			t[i] = stripDateTags(elem)
		}
	}
	return v
}
