// Package money renders backend-computed amounts the way the store's
// Brazilian audience reads them. No arithmetic happens here: prices,
// discounts and totals all arrive final from the API.
package money

import (
	"strconv"
	"strings"
)

// Format renders v with two decimals and a comma separator: 1234.5 -> "1234,50".
func Format(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}

// BRL prefixes the formatted amount with the currency sign: "R$ 19,90".
func BRL(v float64) string {
	return "R$ " + Format(v)
}
