package rating

import "testing"

func TestNewAggregate(t *testing.T) {
	tests := []struct {
		name    string
		sum     int64
		count   int64
		wantNil bool
		want    float64
	}{
		{name: "no ratings", sum: 0, count: 0, wantNil: true},
		{name: "3 4 5", sum: 12, count: 3, want: 4.00},
		{name: "single", sum: 5, count: 1, want: 5},
		{name: "repeating decimal", sum: 10, count: 3, want: 3.33},
		{name: "rounds up", sum: 11, count: 3, want: 3.67},
		{name: "half rounds up", sum: 107, count: 40, want: 2.68},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAggregate(tt.sum, tt.count)
			if got.Count != tt.count {
				t.Errorf("Count = %d, want %d", got.Count, tt.count)
			}
			if tt.wantNil {
				if got.Average != nil {
					t.Errorf("Average = %v, want nil", *got.Average)
				}
				return
			}
			if got.Average == nil || *got.Average != tt.want {
				t.Errorf("Average = %v, want %v", got.Average, tt.want)
			}
		})
	}
}

func TestValidValue(t *testing.T) {
	for v := -1; v <= 7; v++ {
		want := v >= 1 && v <= 5
		if got := ValidValue(v); got != want {
			t.Errorf("ValidValue(%d) = %v, want %v", v, got, want)
		}
	}
}
