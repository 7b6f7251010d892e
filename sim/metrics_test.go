package sim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccumulator_Advance_UsesCountsForInterval(t *testing.T) {
	var a Accumulator
	a.Advance(5, 2, 1)  // [0,5]: 2 loaders, 1 scale
	a.Advance(5, 9, 9)  // zero-length interval adds nothing
	a.Advance(12, 1, 0) // [5,12]: 1 loader, 0 scales

	assert.Equal(t, 17.0, a.LoaderBusyIntegral)
	assert.Equal(t, 5.0, a.ScaleBusyIntegral)
	assert.Equal(t, 12.0, a.LastUpdate)
}

func TestAccumulator_Finalize(t *testing.T) {
	a := Accumulator{LoaderBusyIntegral: 150, ScaleBusyIntegral: 60}
	u := a.Finalize(100, 2, 1)
	assert.InDelta(t, 75.0, u.LoaderPercent, 1e-9)
	assert.InDelta(t, 60.0, u.ScalePercent, 1e-9)
}

func TestAccumulator_Finalize_ZeroTime_ReturnsZero(t *testing.T) {
	a := Accumulator{LoaderBusyIntegral: 3, ScaleBusyIntegral: 3}
	assert.Equal(t, Utilization{}, a.Finalize(0, 2, 1))
}

func TestResult_Print_TwoDecimals(t *testing.T) {
	r := Result{TotalTime: 76, Utilization: Utilization{LoaderPercent: 83.5526, ScalePercent: 100}}
	var buf bytes.Buffer
	r.Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "Total Time           : 76.00")
	assert.Contains(t, out, "Loader Utilization   : 83.55%")
	assert.Contains(t, out, "Scale Utilization    : 100.00%")
}
