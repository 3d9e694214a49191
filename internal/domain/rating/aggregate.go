package rating

// Aggregate is the derived average and count over a set of ratings.
// Average is nil when Count is zero.
type Aggregate struct {
	Average *float64
	Count   int64
}

// NewAggregate builds the aggregate from the integer sum and count of the
// ratings. The average is rounded half up to two decimals using integer
// arithmetic, so 2.675 rounds to 2.68.
func NewAggregate(sum, count int64) Aggregate {
	if count <= 0 {
		return Aggregate{}
	}
	cents := (200*sum + count) / (2 * count)
	avg := float64(cents) / 100
	return Aggregate{Average: &avg, Count: count}
}
