// file: internals/features/academics/academic_records/model/academic_record_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCompositeScore(t *testing.T) {
	// bobot: pengetahuan 0.3, keterampilan 0.3, sikap 0.1, UTS 0.1, UAS 0.2
	assert.Equal(t, 80.0, ComputeCompositeScore(80, 80, 80, 80, 80))
	assert.Equal(t, 83.5, ComputeCompositeScore(90, 85, 80, 70, 80))
	assert.Equal(t, 0.0, ComputeCompositeScore(0, 0, 0, 0, 0))

	// dibulatkan 2 desimal
	assert.Equal(t, 77.48, ComputeCompositeScore(77.77, 77.77, 76, 76, 78.11))
}
