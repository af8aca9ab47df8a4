package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// OrderItem is a normalized line item in the carrier's expected shape.
type OrderItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
}

// ItemDefaults carries order-level fallbacks applied during normalization.
type ItemDefaults struct {
	Price float64
}

var unitKeys = []string{"units", "quantity", "qty"}

var priceKeys = []string{"selling_price", "sellingPrice", "currentPrice", "price"}

// BuildOrderItems normalizes heterogeneous item payloads from upstream
// shops. Units floor at 1 (zero, negative and non-numeric all normalize
// to 1: an order line never ships zero units), prices floor at 0, and
// missing names/SKUs get positional placeholders. Output order matches
// input order.
func BuildOrderItems(items []map[string]any, defaults ItemDefaults) []OrderItem {
	out := make([]OrderItem, len(items))
	for idx, it := range items {
		units := 1
		if raw, ok := firstPresent(it, unitKeys); ok {
			if n, ok := asNumber(raw); ok && n > 0 {
				units = int(n)
			}
		}
		if units < 1 {
			units = 1
		}

		price := defaults.Price
		if raw, ok := firstPresent(it, priceKeys); ok {
			if n, ok := asNumber(raw); ok {
				price = n
			} else {
				price = 0
			}
		}

		name := fmt.Sprintf("Item %d", idx+1)
		if raw, ok := firstPresent(it, []string{"name"}); ok {
			name = asString(raw)
		}
		sku := fmt.Sprintf("SKU-%d", idx+1)
		if raw, ok := firstPresent(it, []string{"sku"}); ok {
			sku = asString(raw)
		}

		out[idx] = OrderItem{
			Name:         name,
			SKU:          sku,
			Units:        units,
			SellingPrice: price,
		}
	}
	return out
}

// SubTotal sums selling_price times units over normalized items.
func SubTotal(items []OrderItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.SellingPrice * float64(it.Units)
	}
	return total
}

func firstPresent(m map[string]any, keys []string) (any, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func asNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
