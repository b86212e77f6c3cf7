package currency

import (
	"fmt"
	"math"
)

// FormatBRL renders an amount the Brazilian way: "R$ 1.234,56".
func FormatBRL(amount float64) string {
	cents := math.Round(amount * 100)

	negative := cents < 0
	if negative {
		cents = -cents
	}

	intPart := int64(cents) / 100
	fracPart := int64(cents) % 100

	intStr := fmt.Sprintf("%d", intPart)
	formatted := addThousandsSeparator(intStr, ".")

	result := fmt.Sprintf("R$ %s,%02d", formatted, fracPart)
	if negative {
		result = "-" + result
	}

	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
