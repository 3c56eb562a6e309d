package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/geo"
)

func TestBusStats_Linear(t *testing.T) {
	c := buildABC(t)
	require.NoError(t, c.SetDistance("A", "B", 900))
	require.NoError(t, c.SetDistance("B", "A", 1000))
	require.NoError(t, c.SetDistance("B", "C", 500))
	_, err := c.AddBus("55", []string{"A", "B", "C"}, false)
	require.NoError(t, err)

	st, err := c.BusStats("55")
	require.NoError(t, err)

	assert.Equal(t, 5, st.StopCount)
	assert.Equal(t, 3, st.UniqueStopCount)
	// forward 900+500, backward 500 (fallback) + 1000
	assert.Equal(t, 2900.0, st.RouteLength)

	a, _ := c.Stop("A")
	b, _ := c.Stop("B")
	cc, _ := c.Stop("C")
	straight := 2 * (geo.Distance(a.Coordinates, b.Coordinates) + geo.Distance(b.Coordinates, cc.Coordinates))
	assert.InDelta(t, 2900.0/straight, st.Curvature, 1e-9)
}

func TestBusStats_Circular(t *testing.T) {
	c := buildABC(t)
	require.NoError(t, c.SetDistance("A", "B", 100))
	require.NoError(t, c.SetDistance("B", "C", 200))
	require.NoError(t, c.SetDistance("C", "A", 300))
	_, err := c.AddBus("ring", []string{"A", "B", "C", "A"}, true)
	require.NoError(t, err)

	st, err := c.BusStats("ring")
	require.NoError(t, err)
	assert.Equal(t, 4, st.StopCount)
	assert.Equal(t, 3, st.UniqueStopCount)
	assert.Equal(t, 600.0, st.RouteLength)
	assert.Greater(t, st.Curvature, 0.0)
}

func TestBusStats_SingleStopHasZeroCurvature(t *testing.T) {
	c := buildABC(t)
	_, err := c.AddBus("solo", []string{"A"}, false)
	require.NoError(t, err)

	st, err := c.BusStats("solo")
	require.NoError(t, err)
	assert.Equal(t, catalogue.BusStats{StopCount: 1, UniqueStopCount: 1}, st)
}

func TestBusStats_Errors(t *testing.T) {
	c := buildABC(t)
	_, err := c.BusStats("none")
	assert.ErrorIs(t, err, catalogue.ErrUnknownBus)

	_, err = c.AddBus("gap", []string{"A", "B"}, true)
	require.NoError(t, err)
	_, err = c.BusStats("gap")
	assert.ErrorIs(t, err, catalogue.ErrMissingDistance)
}

func TestStopBuses_SortedAndDistinct(t *testing.T) {
	c := buildABC(t)
	for _, name := range []string{"828", "256", "14"} {
		_, err := c.AddBus(name, []string{"A", "B", "A"}, true)
		require.NoError(t, err)
	}

	got, err := c.StopBuses("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"14", "256", "828"}, got)

	none, err := c.StopBuses("C")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	_, err = c.StopBuses("X")
	assert.ErrorIs(t, err, catalogue.ErrUnknownStop)
}
