package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fabtrack/steelparse/constants"
)

var reDecimal = regexp.MustCompile(`^-?\d+(\.\d{1,4})?$`)

var knownItemKeys = map[string]struct{}{
	"item_code": {}, "description": {}, "metal_type": {}, "alloy": {},
	"specifics": {}, "dimensions": {}, "unit_cost": {}, "price_unit": {},
	"confidence": {},
}

// SanitizeItems repairs the common ways models bend the schema without
// changing meaning: numeric unit_cost instead of a decimal string, synonym
// metal types and price units, nulls for absent fields, stray keys. All
// fields are optional, so repair only ever normalizes or drops.
func SanitizeItems(payload []byte) ([]byte, []string, error) {
	var items []map[string]any
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, nil, err
	}

	var notes []string
	for i, m := range items {
		for k, v := range m {
			if _, ok := knownItemKeys[k]; !ok {
				delete(m, k)
				notes = append(notes, fmt.Sprintf("item[%d]: dropped unknown key %q", i, k))
				continue
			}
			if v == nil {
				delete(m, k)
				notes = append(notes, fmt.Sprintf("item[%d]: dropped null %q", i, k))
			}
		}

		if v, ok := m["unit_cost"]; ok {
			switch t := v.(type) {
			case float64:
				m["unit_cost"] = strconv.FormatFloat(t, 'f', 2, 64)
				notes = append(notes, fmt.Sprintf("item[%d]: coerced numeric unit_cost", i))
			case string:
				s := strings.TrimSpace(strings.TrimPrefix(t, "$"))
				s = strings.ReplaceAll(s, ",", "")
				if s == "" {
					delete(m, "unit_cost")
					notes = append(notes, fmt.Sprintf("item[%d]: dropped empty unit_cost", i))
				} else if !reDecimal.MatchString(s) {
					if f, err := strconv.ParseFloat(s, 64); err == nil {
						m["unit_cost"] = strconv.FormatFloat(f, 'f', 2, 64)
						notes = append(notes, fmt.Sprintf("item[%d]: reformatted unit_cost", i))
					} else {
						delete(m, "unit_cost")
						notes = append(notes, fmt.Sprintf("item[%d]: dropped unparseable unit_cost", i))
					}
				} else if s != t {
					m["unit_cost"] = s
					notes = append(notes, fmt.Sprintf("item[%d]: trimmed unit_cost", i))
				}
			default:
				delete(m, "unit_cost")
				notes = append(notes, fmt.Sprintf("item[%d]: dropped unit_cost of type %T", i, v))
			}
		}

		if v, ok := m["metal_type"].(string); ok {
			if mt, matched := constants.CanonicalizeMetal(v); matched && string(mt) != v {
				m["metal_type"] = string(mt)
				notes = append(notes, fmt.Sprintf("item[%d]: canonicalized metal_type %q", i, v))
			} else if !matched && string(mt) != v {
				m["metal_type"] = string(constants.UnknownMetal)
				notes = append(notes, fmt.Sprintf("item[%d]: unrecognized metal_type %q", i, v))
			}
		}

		if v, ok := m["price_unit"].(string); ok {
			if pu, matched := constants.CanonicalizePriceUnit(v); matched && string(pu) != v {
				m["price_unit"] = string(pu)
				notes = append(notes, fmt.Sprintf("item[%d]: canonicalized price_unit %q", i, v))
			} else if !matched {
				delete(m, "price_unit")
				notes = append(notes, fmt.Sprintf("item[%d]: dropped unrecognized price_unit %q", i, v))
			}
		}

		if v, ok := m["confidence"].(float64); ok {
			if v < 0 {
				m["confidence"] = 0.0
				notes = append(notes, fmt.Sprintf("item[%d]: clamped confidence", i))
			} else if v > 1 {
				m["confidence"] = 1.0
				notes = append(notes, fmt.Sprintf("item[%d]: clamped confidence", i))
			}
		}
	}

	b, err := json.Marshal(items)
	if err != nil {
		return nil, nil, err
	}
	return b, notes, nil
}
