// file: internals/features/kpis/model/kpi_model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAchievementPercent(t *testing.T) {
	got := ComputeAchievementPercent(75, 100)
	require.NotNil(t, got)
	assert.Equal(t, 75.0, *got)

	// di atas target boleh melebihi 100%
	got = ComputeAchievementPercent(120, 100)
	require.NotNil(t, got)
	assert.Equal(t, 120.0, *got)

	// dibulatkan 2 desimal
	got = ComputeAchievementPercent(1, 3)
	require.NotNil(t, got)
	assert.Equal(t, 33.33, *got)

	// target 0: tidak terdefinisi
	assert.Nil(t, ComputeAchievementPercent(50, 0))
}

func TestRecalculate(t *testing.T) {
	k := SchoolKpi{SchoolKpiTargetValue: 200, SchoolKpiAchievedValue: 150}
	k.Recalculate()
	require.NotNil(t, k.SchoolKpiAchievementPercent)
	assert.Equal(t, 75.0, *k.SchoolKpiAchievementPercent)

	k.SchoolKpiTargetValue = 0
	k.Recalculate()
	assert.Nil(t, k.SchoolKpiAchievementPercent)
}
