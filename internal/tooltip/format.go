package tooltip

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatFixed prints f with exactly decimals fractional digits, rounding an
// exact tie away from zero the way chart labels do (0.125 -> "0.13").
// Rounding works on the exact binary value, so 1.005 (stored just below)
// still prints "1.00".
func FormatFixed(f float64, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', decimals, 64)
	}

	r := new(big.Rat).SetFloat64(math.Abs(f))
	r.Mul(r, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)))

	q, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(r.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	digits := q.String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	var sb strings.Builder
	if f < 0 {
		sb.WriteByte('-')
	}
	cut := len(digits) - decimals
	sb.WriteString(digits[:cut])
	if decimals > 0 {
		sb.WriteByte('.')
		sb.WriteString(digits[cut:])
	}
	return sb.String()
}
