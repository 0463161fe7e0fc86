package domain

import (
	"fmt"
	"math/big"
	"strings"
)

// FormatUnits renders a base-unit amount with the given decimals, trimming trailing zeros.
// nil renders as "unknown".
func FormatUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "unknown"
	}
	if decimals <= 0 {
		return amount.String()
	}

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(new(big.Int).Abs(amount), unit, new(big.Int))

	sign := ""
	if amount.Sign() < 0 {
		sign = "-"
	}
	if frac.Sign() == 0 {
		return sign + whole.String()
	}

	fracStr := fmt.Sprintf("%0*s", decimals, frac.String())
	return sign + whole.String() + "." + strings.TrimRight(fracStr, "0")
}

// FormatEther renders a wei amount in whole native units
func FormatEther(amount *big.Int) string {
	return FormatUnits(amount, 18)
}
