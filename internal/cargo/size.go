package cargo

import (
	"strconv"
)

// RoundUpToNearest10 rounds x up to a multiple of 10.
func RoundUpToNearest10(x int) int {
	return (x + 9) / 10 * 10
}

// DigitReverse reverses the decimal digits of n: 34 becomes 43 and 30
// becomes 3. Negative input is returned unchanged.
func DigitReverse(n int) int {
	if n < 0 {
		return n
	}
	digits := []byte(strconv.Itoa(n))
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	r, _ := strconv.Atoi(string(digits))
	return r
}

// EffectiveSizeRoll is the roll used for cargo size. Trade centers take the
// larger of the roll and its digit reversal.
func EffectiveSizeRoll(sizeRoll int, tradeCenter bool) int {
	if !tradeCenter {
		return sizeRoll
	}
	return max(sizeRoll, DigitReverse(sizeRoll))
}

// Size returns the cargo size for a size roll at loc.
func Size(sizeRoll int, loc Location) int {
	return RoundUpToNearest10((loc.Size + loc.Wealth) * EffectiveSizeRoll(sizeRoll, loc.TradeCenter))
}
