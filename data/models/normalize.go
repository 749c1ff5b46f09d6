package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Defaults applied when a workshop field is absent or unusable.
const (
	DefaultTitle        = "Untitled Workshop"
	DefaultDescription  = "Workshop details will be shared soon."
	DefaultCategory     = "General"
	DefaultInstructor   = "TBA"
	DefaultDuration     = "2 hours"
	DefaultCapacity     = 50
	DefaultMaterialType = "notes"
)

// NormalizeWorkshop coerces a workshop record into its canonical, internally
// consistent shape: string fields defaulted, schedule mirrored into date,
// capacity mirrored into seats (defaulting to 50 when non-positive), enrolled
// never below the actual roster length, status collapsed to the two known
// values, and materials cleaned. Normalizing an already-normalized record is
// a no-op, which keeps repeated updates from drifting.
func NormalizeWorkshop(w Workshop) Workshop {
	schedule := w.Schedule
	if schedule == "" {
		schedule = w.Date
	}
	if schedule == "" {
		schedule = time.Now().Format("1/2/2006")
	}

	capacity := w.Capacity
	if capacity <= 0 {
		capacity = w.Seats
	}
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	if w.Registrants == nil {
		w.Registrants = []Registrant{}
	}
	enrolled := w.Enrolled
	if len(w.Registrants) > enrolled {
		enrolled = len(w.Registrants)
	}

	if w.Title == "" {
		w.Title = DefaultTitle
	}
	if w.Description == "" {
		w.Description = DefaultDescription
	}
	if w.Category == "" {
		w.Category = DefaultCategory
	}
	if w.Instructor == "" {
		w.Instructor = DefaultInstructor
	}
	if w.Duration == "" {
		w.Duration = DefaultDuration
	}

	w.Schedule = schedule
	w.Date = schedule
	w.Capacity = capacity
	w.Seats = capacity
	w.Enrolled = enrolled
	if w.Status != StatusCompleted {
		w.Status = StatusUpcoming
	}
	w.Materials = CleanMaterials(w.Materials)

	return w
}

// CleanMaterials fills in generated ids and free-text defaults for each
// material entry. The nth entry with no id becomes "m-n".
func CleanMaterials(materials []Material) []Material {
	cleaned := make([]Material, len(materials))
	for i, m := range materials {
		if m.ID == "" {
			m.ID = fmt.Sprintf("m-%d", i+1)
		}
		if m.Type == "" {
			m.Type = DefaultMaterialType
		}
		if m.Title == "" {
			m.Title = fmt.Sprintf("Material %d", i+1)
		}
		cleaned[i] = m
	}
	return cleaned
}

// IntFromAny converts a loosely typed JSON value to an int the way the
// legacy clients expect: JSON numbers and numeric strings count, everything
// else reports false and the caller falls back to a default.
func IntFromAny(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return int(f), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, false
		}
		return int(f), true
	default:
		return 0, false
	}
}
