package engine

import (
	"sort"

	"github.com/greenvale/tiny-carbon-tracker/internal/model"
)

// Tip is one actionable suggestion tied to a category.
type Tip struct {
	Category model.Category
	Text     string
}

// tipPools holds the per-category suggestion pools. Pool order matters:
// tips are drawn front to back.
var tipPools = map[model.Category][]string{
	model.CategoryTransport: {
		"Try carpooling with classmates — splitting a car ride by 3 cuts your transport CO₂ by 66%.",
		"Could you cycle or walk for short trips this week? Even 2 days can make a big difference.",
		"Public transport like buses and trains produce far less CO₂ per passenger than driving alone.",
		"If your family is considering a new car, an electric vehicle produces zero tailpipe emissions.",
		"Combining multiple errands into one trip reduces total driving distance significantly.",
		"Walking or cycling also improves your health — a win for you and the planet!",
	},
	model.CategoryDiet: {
		"Swapping one beef meal for chicken saves about 4.2 kg CO₂e. Try it this week!",
		"A fully vegan meal produces 15x less CO₂ than a beef meal — try Meatless Monday.",
		"Buying local and seasonal produce reduces transport and cold-storage emissions.",
		"Bringing a reusable water bottle eliminates bottled water emissions entirely.",
		"Plant-based proteins like beans, lentils, and tofu have some of the lowest carbon footprints.",
		"Reducing food portions to what you actually eat also cuts waste-related emissions.",
	},
	model.CategoryEnergy: {
		"Switching off the AC when you leave a room saves ~1.5 kg CO₂ per hour it would have run.",
		"Air-drying clothes instead of using a dryer saves 2.4 kg CO₂ per load.",
		"LED bulbs use 75% less energy than incandescent — make sure your home has switched.",
		"Unplugging chargers and devices on standby can save up to 10% of household energy.",
		"Taking shorter showers (under 5 min) reduces both water and energy usage.",
		"Washing clothes at 30°C instead of 60°C halves the energy used per load.",
	},
	model.CategoryWaste: {
		"Carry a reusable bag — each plastic bag you skip saves 33g CO₂e and reduces landfill.",
		"Composting food scraps instead of binning them cuts emissions by up to 90%.",
		"Recycling one plastic bottle saves about 80g of CO₂ compared to landfill.",
		"Buy second-hand when possible — a single fast-fashion item generates ~10 kg CO₂e.",
		"Repair electronics instead of replacing them — e-waste from a small device is ~5 kg CO₂e.",
		"Plan your meals for the week to reduce food waste — the average household wastes 30% of food.",
	},
}

// rankCategories orders the categories present in totals worst first.
// The sort is stable over model.Categories declaration order, which is
// the documented tie-break.
func rankCategories(totals map[model.Category]float64) []model.Category {
	var ranked []model.Category
	for _, c := range model.Categories {
		if _, ok := totals[c]; ok {
			ranked = append(ranked, c)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return totals[ranked[i]] > totals[ranked[j]]
	})
	return ranked
}

// PersonalizedTips builds a ranked, de-duplicated tip list. One pass takes
// at most one tip per category, worst category first, for topical
// diversity; any shortfall is filled from the worst category's pool.
func PersonalizedTips(totals map[model.Category]float64, count int) []Tip {
	ranked := rankCategories(totals)

	var tips []Tip
	used := map[string]struct{}{}

	for _, cat := range ranked {
		if len(tips) >= count {
			break
		}
		for _, text := range tipPools[cat] {
			if _, ok := used[text]; ok {
				continue
			}
			tips = append(tips, Tip{Category: cat, Text: text})
			used[text] = struct{}{}
			break
		}
	}

	if len(tips) < count {
		worst := model.CategoryTransport
		if len(ranked) > 0 {
			worst = ranked[0]
		}
		for _, text := range tipPools[worst] {
			if len(tips) >= count {
				break
			}
			if _, ok := used[text]; ok {
				continue
			}
			tips = append(tips, Tip{Category: worst, Text: text})
			used[text] = struct{}{}
		}
	}

	return tips
}

// WorstCategory returns the single highest-total category, ties broken by
// declaration order, defaulting to transport for an empty mapping.
func WorstCategory(totals map[model.Category]float64) model.Category {
	worst := model.CategoryTransport
	max := -1.0
	for _, c := range model.Categories {
		if v, ok := totals[c]; ok && v > max {
			max = v
			worst = c
		}
	}
	return worst
}
