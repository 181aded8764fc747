package emission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenvale/tiny-carbon-tracker/internal/emission"
	"github.com/greenvale/tiny-carbon-tracker/internal/model"
)

func TestTransportCO2Kg(t *testing.T) {
	tests := []struct {
		mode string
		km   float64
		want float64
	}{
		{"car", 10, 3.42}, // 0.171 × 10 × 2
		{"bus", 5, 0.89},
		{"taxi", 2.5, 1.0},
		{"cycle", 12, 0},
		{"walk", 3, 0},
		{"hoverboard", 10, 0}, // unknown mode fails soft
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, emission.TransportCO2Kg(tt.mode, tt.km), 1e-9,
			"TransportCO2Kg(%q, %v)", tt.mode, tt.km)
	}
}

func TestTransportLabel(t *testing.T) {
	assert.Equal(t, "Metro/Train", emission.TransportLabel("metro"))
	assert.Equal(t, "hoverboard", emission.TransportLabel("hoverboard"))
}

func TestItems(t *testing.T) {
	for _, cat := range []model.Category{model.CategoryDiet, model.CategoryEnergy, model.CategoryWaste} {
		items := emission.Items(cat)
		require.NotEmpty(t, items, "catalog for %s", cat)
		keys := map[string]bool{}
		for _, it := range items {
			assert.False(t, keys[it.Key], "duplicate key %q in %s", it.Key, cat)
			keys[it.Key] = true
			assert.NotEmpty(t, it.Label)
		}
	}

	assert.Nil(t, emission.Items(model.CategoryTransport))
	assert.Nil(t, emission.Items(model.Category("gardening")))
}

func TestItemCO2Kg(t *testing.T) {
	one := emission.ItemCO2Kg(model.CategoryDiet, "beef_meal", 1)
	assert.InDelta(t, 6.0, one, 1e-9)

	// Quantity multiplies and is floored to 1.
	assert.InDelta(t, 12.0, emission.ItemCO2Kg(model.CategoryDiet, "beef_meal", 2), 1e-9)
	assert.InDelta(t, one, emission.ItemCO2Kg(model.CategoryDiet, "beef_meal", 0), 1e-9)
	assert.InDelta(t, one, emission.ItemCO2Kg(model.CategoryDiet, "beef_meal", -3), 1e-9)

	// Credits stay negative.
	assert.InDelta(t, -10.0, emission.ItemCO2Kg(model.CategoryWaste, "repaired_device", 2), 1e-9)

	// Unknown keys contribute zero.
	assert.Zero(t, emission.ItemCO2Kg(model.CategoryDiet, "unicorn_steak", 3))
	assert.Zero(t, emission.ItemCO2Kg(model.Category("gardening"), "beef_meal", 1))
}

func TestFindItem(t *testing.T) {
	it, ok := emission.FindItem(model.CategoryWaste, "recycled_bottle")
	require.True(t, ok)
	assert.Negative(t, it.CO2Kg)

	_, ok = emission.FindItem(model.CategoryWaste, "nope")
	assert.False(t, ok)
}
