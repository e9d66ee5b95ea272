package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

const rupee = "₹"

// FormatINR renders a whole rupee amount. Hotels use the spaced form
// ("₹ 9600"), flights and transport the compact one ("₹9600").
func FormatINR(amount int, spaced bool) string {
	if spaced {
		return rupee + " " + strconv.Itoa(amount)
	}
	return rupee + strconv.Itoa(amount)
}

// ParsePrice reverses FormatINR. Grouping commas are tolerated so prices
// copied from other sources still compare.
func ParsePrice(s string) (int, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, rupee)
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)
	n, err := strconv.Atoi(clean)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", s)
	}
	return n, nil
}

// rangeFor resolves the tier for name.
func (t tier) rangeFor(name string) priceRange {
	if containsAny(name, t.Premium) {
		return t.PremiumRange
	}
	if containsAny(name, t.Budget) {
		return t.BudgetRange
	}
	return t.Default
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func toINR(usd int) int {
	return usd * USDToINR
}
