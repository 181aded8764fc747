// Package emission maps activity descriptions to approximate kg of
// CO₂-equivalent. Factors are rough averages intended for personal
// tracking, not carbon accounting.
package emission

import "github.com/greenvale/tiny-carbon-tracker/internal/model"

// TransportFactors holds kg CO₂e per km per person for each transport mode.
var TransportFactors = map[string]float64{
	"car":       0.171,
	"bus":       0.089,
	"metro":     0.041,
	"taxi":      0.2,
	"motorbike": 0.103,
	"cycle":     0,
	"walk":      0,
}

// TransportLabels maps transport modes to display names.
var TransportLabels = map[string]string{
	"car":       "Car",
	"bus":       "Bus",
	"metro":     "Metro/Train",
	"taxi":      "Taxi",
	"motorbike": "Motorbike",
	"cycle":     "Cycle",
	"walk":      "Walk",
}

// TransportModes lists all known modes in declaration order.
var TransportModes = []string{"car", "bus", "metro", "taxi", "motorbike", "cycle", "walk"}

// TransportCO2Kg returns the round-trip kg CO₂e for a one-way distance.
// Unknown modes have factor zero.
func TransportCO2Kg(mode string, oneWayKm float64) float64 {
	return TransportFactors[mode] * oneWayKm * 2
}

// TransportLabel returns the display name for a mode, falling back to the
// mode key itself.
func TransportLabel(mode string) string {
	if l, ok := TransportLabels[mode]; ok {
		return l
	}
	return mode
}

// Item is one loggable activity in a non-transport category catalog.
// CO2Kg is per unit; negative values are credits (e.g. recycling).
type Item struct {
	Key   string
	Label string
	Icon  string
	CO2Kg float64
}

var dietItems = []Item{
	{Key: "beef_meal", Label: "Beef meal", Icon: "🥩", CO2Kg: 6.0},
	{Key: "chicken_meal", Label: "Chicken meal", Icon: "🍗", CO2Kg: 1.8},
	{Key: "vegetarian_meal", Label: "Vegetarian meal", Icon: "🥗", CO2Kg: 1.0},
	{Key: "vegan_meal", Label: "Vegan meal", Icon: "🌱", CO2Kg: 0.4},
	{Key: "bottled_water", Label: "Bottled water", Icon: "🧴", CO2Kg: 0.2},
	{Key: "food_waste", Label: "Food thrown away", Icon: "🗑️", CO2Kg: 1.9},
}

var energyItems = []Item{
	{Key: "ac_hour", Label: "AC running (1h)", Icon: "❄️", CO2Kg: 1.5},
	{Key: "heater_hour", Label: "Heater running (1h)", Icon: "🔥", CO2Kg: 1.2},
	{Key: "dryer_load", Label: "Dryer load", Icon: "🌀", CO2Kg: 2.4},
	{Key: "long_shower", Label: "Long hot shower", Icon: "🚿", CO2Kg: 0.9},
	{Key: "standby_day", Label: "Devices on standby (day)", Icon: "🔌", CO2Kg: 0.3},
	{Key: "line_dry", Label: "Air-dried a laundry load", Icon: "👕", CO2Kg: -2.4},
}

var wasteItems = []Item{
	{Key: "plastic_bag", Label: "Plastic bag", Icon: "🛍️", CO2Kg: 0.033},
	{Key: "plastic_bottle", Label: "Plastic bottle to landfill", Icon: "🍼", CO2Kg: 0.08},
	{Key: "fast_fashion", Label: "Fast-fashion item", Icon: "👗", CO2Kg: 10.0},
	{Key: "recycled_bottle", Label: "Recycled a plastic bottle", Icon: "♻️", CO2Kg: -0.08},
	{Key: "composted", Label: "Composted food scraps", Icon: "🪱", CO2Kg: -0.5},
	{Key: "repaired_device", Label: "Repaired instead of replaced", Icon: "🔧", CO2Kg: -5.0},
}

// Items returns the catalog for a category in declaration order. Transport
// has no item catalog (distance drives its emissions); unknown categories
// yield an empty catalog.
func Items(cat model.Category) []Item {
	switch cat {
	case model.CategoryDiet:
		return dietItems
	case model.CategoryEnergy:
		return energyItems
	case model.CategoryWaste:
		return wasteItems
	default:
		return nil
	}
}

// FindItem looks up an item by key within a category.
func FindItem(cat model.Category, key string) (Item, bool) {
	for _, it := range Items(cat) {
		if it.Key == key {
			return it, true
		}
	}
	return Item{}, false
}

// ItemCO2Kg returns item CO₂e times quantity. Quantity is floored to 1;
// unknown category/item keys contribute zero.
func ItemCO2Kg(cat model.Category, key string, quantity int) float64 {
	it, ok := FindItem(cat, key)
	if !ok {
		return 0
	}
	if quantity < 1 {
		quantity = 1
	}
	return it.CO2Kg * float64(quantity)
}
