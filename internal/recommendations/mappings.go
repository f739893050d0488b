package recommendations

import (
	"strings"
)

const highCarbonMaterialMin = 10.0

var baseCarbonActions = []string{
	"Switch to low-carbon material alternatives",
	"Optimize supply chain to reduce transportation emissions",
	"Implement carbon capture or offset programs",
}

var energyActions = []string{
	"Implement energy-efficient manufacturing processes",
	"Switch to renewable energy sources",
	"Optimize equipment efficiency",
	"Consider energy recovery systems",
}

var circularActions = []string{
	"Design products for disassembly and recycling",
	"Implement material recovery programs",
	"Use recycled content where possible",
	"Partner with circular economy initiatives",
}

// materialActionRules are checked in order against the lower-cased material
// type; the first keyword contained wins.
var materialActionRules = []struct {
	keyword string
	actions []string
}{
	{"steel", []string{
		"Consider recycled steel alternatives",
		"Explore steel-free design options",
		"Source from electric arc furnace producers",
		"Optimize design to reduce steel quantity",
	}},
	{"aluminum", []string{
		"Use recycled aluminum (90% less energy)",
		"Consider alternative lightweight materials",
		"Optimize design for material efficiency",
		"Source from renewable energy producers",
	}},
	{"plastic", []string{
		"Switch to bio-based plastics",
		"Use recycled plastic content",
		"Consider biodegradable alternatives",
		"Reduce plastic usage through design optimization",
	}},
}

var genericMaterialActions = []string{
	"Research sustainable alternatives",
	"Optimize quantity and design",
	"Source from certified sustainable suppliers",
	"Consider recycled or bio-based options",
}

var categoryActionTable = map[string][]string{
	"metals": {
		"Prioritize recycled metal content",
		"Explore lightweight alloy alternatives",
		"Implement metal recovery programs",
	},
	"plastics": {
		"Transition to bio-based plastics",
		"Increase recycled content usage",
		"Reduce single-use plastic components",
	},
	"construction": {
		"Use sustainable building materials",
		"Implement modular design principles",
		"Source locally to reduce transport",
	},
	"textiles": {
		"Choose organic or recycled fibers",
		"Implement textile recycling programs",
		"Reduce material waste through efficient cutting",
	},
}

var genericCategoryActions = []string{
	"Research sustainable alternatives in this category",
	"Optimize usage and design efficiency",
	"Source from environmentally certified suppliers",
}

// carbonActions returns the fixed carbon actions, plus one naming up to three
// high-carbon materials in breakdown order.
func carbonActions(materials []MaterialImpact) []string {
	actions := append([]string(nil), baseCarbonActions...)
	var names []string
	for _, m := range materials {
		if m.CO2Impact > highCarbonMaterialMin {
			names = append(names, m.MaterialType)
			if len(names) == 3 {
				break
			}
		}
	}
	if len(names) > 0 {
		actions = append(actions, "Focus on reducing usage of high-carbon materials like "+strings.Join(names, ", "))
	}
	return actions
}

func materialActions(materialType string) []string {
	lower := strings.ToLower(materialType)
	for _, rule := range materialActionRules {
		if strings.Contains(lower, rule.keyword) {
			return append([]string(nil), rule.actions...)
		}
	}
	return append([]string(nil), genericMaterialActions...)
}

func categoryActions(category string) []string {
	if actions, ok := categoryActionTable[strings.ToLower(category)]; ok {
		return append([]string(nil), actions...)
	}
	return append([]string(nil), genericCategoryActions...)
}
