package rating

const (
	MinValue = 1
	MaxValue = 5
)

func ValidValue(v int) bool {
	return v >= MinValue && v <= MaxValue
}
