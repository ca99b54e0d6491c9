package money

// All amounts are integer minor units (cents). Floating point is never used
// for allocation math so repeated settlements cannot drift.

// CeilDiv returns ceil(total / divisor) for total >= 0 and divisor > 0.
// Rounding up means the sum of per-member shares is never less than the
// true cost.
func CeilDiv(total, divisor int64) int64 {
	return (total + divisor - 1) / divisor
}

// ShareAmount is a member's charge for one allocation round.
func ShareAmount(perShare int64, weight int) int64 {
	return perShare * int64(weight)
}

// Owed scales an item price by the receipt's total/subtotal surcharge
// factor, rounding up: ceil(price * total / subtotal).
func Owed(price, total, subtotal int64) int64 {
	return (price*total + subtotal - 1) / subtotal
}
