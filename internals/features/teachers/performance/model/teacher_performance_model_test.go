// file: internals/features/teachers/performance/model/teacher_performance_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeOverallScore(t *testing.T) {
	// bobot: mengajar 0.5, disiplin 0.25, umpan balik siswa 0.25
	assert.Equal(t, 80.0, ComputeOverallScore(80, 80, 80))
	assert.Equal(t, 85.0, ComputeOverallScore(90, 80, 80))
	assert.Equal(t, 81.88, ComputeOverallScore(85.5, 77.5, 79))
}
