// file: internals/features/facilities/model/facility_usage_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindowsOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		existingStart, existingEnd string
		newStart, newEnd           string
		want                       bool
	}{
		{"baru mulai di dalam existing", "08:00", "10:00", "09:00", "11:00", true},
		{"baru berakhir di dalam existing", "08:00", "10:00", "07:00", "09:00", true},
		{"baru mencakup existing", "08:00", "10:00", "07:00", "11:00", true},
		{"identik", "08:00", "10:00", "08:00", "10:00", true},
		{"di dalam existing", "08:00", "10:00", "08:30", "09:30", true},
		{"tepat setelah (batas eksklusif)", "08:00", "10:00", "10:00", "12:00", false},
		{"tepat sebelum (batas eksklusif)", "08:00", "10:00", "06:00", "08:00", false},
		{"terpisah jauh", "08:00", "10:00", "13:00", "15:00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeWindowsOverlap(tt.existingStart, tt.existingEnd, tt.newStart, tt.newEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}
