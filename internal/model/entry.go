package model

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Category classifies a logged activity.
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryDiet      Category = "diet"
	CategoryEnergy    Category = "energy"
	CategoryWaste     Category = "waste"
)

// Categories lists all categories in declaration order. The order is
// load-bearing: worst-category and tip tie-breaks follow it.
var Categories = []Category{
	CategoryTransport,
	CategoryDiet,
	CategoryEnergy,
	CategoryWaste,
}

// LogEntry is a single logged activity. Entries are never edited in place;
// corrections are logged as new entries.
type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"ts"`
	Category  Category  `json:"category"`
	ItemKey   string    `json:"item_key"`
	Label     string    `json:"label"`
	CO2Kg     float64   `json:"co2_kg"`
	Quantity  int       `json:"quantity"`
	OneWayKm  *float64  `json:"one_way_km,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
}

// EffectiveCategory returns the entry's category, defaulting to transport
// for entries written before categories existed.
func (e LogEntry) EffectiveCategory() Category {
	if e.Category == "" {
		return CategoryTransport
	}
	return e.Category
}

// StateFile is the top-level versioned document stored in state.json.
type StateFile struct {
	Version string     `json:"version"`
	Logs    []LogEntry `json:"logs"`
}

// NewID creates a unique, lexicographically sortable entry ID.
func NewID() string {
	return ulid.Make().String()
}
