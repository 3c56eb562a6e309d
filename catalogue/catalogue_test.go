package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/geo"
)

// buildABC registers stops A, B, C at distinct points.
func buildABC(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	c := catalogue.New()
	for i, name := range []string{"A", "B", "C"} {
		_, err := c.AddStop(name, geo.Coordinates{Lat: 55.6 + float64(i)*0.01, Lng: 37.2})
		require.NoError(t, err)
	}

	return c
}

func TestAddStop_AssignsDenseIDs(t *testing.T) {
	c := buildABC(t)
	for i, name := range []string{"A", "B", "C"} {
		s, ok := c.Stop(name)
		require.True(t, ok)
		assert.Equal(t, i, s.ID)
	}
	assert.Equal(t, 3, c.StopCount())
}

func TestAddStop_Errors(t *testing.T) {
	c := buildABC(t)

	_, err := c.AddStop("A", geo.Coordinates{})
	assert.ErrorIs(t, err, catalogue.ErrDuplicateStop)

	_, err = c.AddStop("", geo.Coordinates{})
	assert.ErrorIs(t, err, catalogue.ErrEmptyName)

	_, err = c.AddStop("Z", geo.Coordinates{Lat: 91})
	assert.ErrorIs(t, err, catalogue.ErrBadCoordinates)

	assert.Equal(t, 3, c.StopCount(), "failed adds must not register stops")
}

func TestAddBus_UnknownStopRejectsWholeBus(t *testing.T) {
	c := buildABC(t)

	_, err := c.AddBus("55", []string{"A", "X", "C"}, false)
	require.ErrorIs(t, err, catalogue.ErrUnknownStop)

	_, ok := c.Bus("55")
	assert.False(t, ok)
	buses, err := c.StopBuses("A")
	require.NoError(t, err)
	assert.Empty(t, buses, "no partial registration on failure")
}

func TestAddBus_Errors(t *testing.T) {
	c := buildABC(t)
	_, err := c.AddBus("55", []string{"A", "B"}, false)
	require.NoError(t, err)

	_, err = c.AddBus("55", []string{"A"}, false)
	assert.ErrorIs(t, err, catalogue.ErrDuplicateBus)

	_, err = c.AddBus("56", nil, true)
	assert.ErrorIs(t, err, catalogue.ErrEmptyRoute)

	_, err = c.AddBus("", []string{"A"}, true)
	assert.ErrorIs(t, err, catalogue.ErrEmptyName)
}

func TestBus_ReturnsCopy(t *testing.T) {
	c := buildABC(t)
	_, err := c.AddBus("55", []string{"A", "B", "C"}, false)
	require.NoError(t, err)

	b, _ := c.Bus("55")
	b.Stops[0] = 2

	again, _ := c.Bus("55")
	assert.Equal(t, []int{0, 1, 2}, again.Stops)
}

func TestSetDistance_NotMirrored(t *testing.T) {
	c := buildABC(t)
	require.NoError(t, c.SetDistance("A", "B", 900))
	require.NoError(t, c.SetDistance("B", "A", 1000))

	ab, err := c.ResolveDistance("A", "B")
	require.NoError(t, err)
	ba, err := c.ResolveDistance("B", "A")
	require.NoError(t, err)

	assert.Equal(t, 900, ab)
	assert.Equal(t, 1000, ba)
}

func TestSetDistance_Errors(t *testing.T) {
	c := buildABC(t)
	assert.ErrorIs(t, c.SetDistance("A", "X", 10), catalogue.ErrUnknownStop)
	assert.ErrorIs(t, c.SetDistance("X", "A", 10), catalogue.ErrUnknownStop)
	assert.ErrorIs(t, c.SetDistance("A", "B", -1), catalogue.ErrBadDistance)
}

func TestResolveDistance_FallbackIsSymmetric(t *testing.T) {
	c := buildABC(t)
	require.NoError(t, c.SetDistance("A", "B", 1200))
	require.NoError(t, c.SetDistance("C", "B", 700))

	pairs := [][2]string{{"A", "B"}, {"B", "C"}}
	for _, p := range pairs {
		fwd, err := c.ResolveDistance(p[0], p[1])
		require.NoError(t, err)
		bwd, err := c.ResolveDistance(p[1], p[0])
		require.NoError(t, err)
		assert.Equal(t, fwd, bwd, "%s<->%s", p[0], p[1])
	}
}

func TestResolveDistance_Missing(t *testing.T) {
	c := buildABC(t)
	_, err := c.ResolveDistance("A", "C")
	assert.ErrorIs(t, err, catalogue.ErrMissingDistance)

	_, err = c.ResolveDistance("A", "nope")
	assert.ErrorIs(t, err, catalogue.ErrUnknownStop)

	_, err = c.ResolveDistanceByID(0, 7)
	assert.ErrorIs(t, err, catalogue.ErrUnknownStop)
}

func TestResolveDistance_DoesNotMutate(t *testing.T) {
	c := buildABC(t)
	require.NoError(t, c.SetDistance("A", "B", 500))

	_, err := c.ResolveDistance("B", "A")
	require.NoError(t, err)
	require.NoError(t, c.SetDistance("A", "B", 800))

	// The fallback did not materialise a B->A entry, so it follows A->B.
	d, err := c.ResolveDistance("B", "A")
	require.NoError(t, err)
	assert.Equal(t, 800, d)
}

func TestFreeze_RejectsMutations(t *testing.T) {
	c := buildABC(t)
	c.Freeze()
	assert.True(t, c.Frozen())

	_, err := c.AddStop("D", geo.Coordinates{})
	assert.ErrorIs(t, err, catalogue.ErrFrozen)
	_, err = c.AddBus("55", []string{"A"}, true)
	assert.ErrorIs(t, err, catalogue.ErrFrozen)
	assert.ErrorIs(t, c.SetDistance("A", "B", 1), catalogue.ErrFrozen)

	// Reads keep working.
	_, ok := c.Stop("A")
	assert.True(t, ok)
}

func TestStopsAndBuses_InsertionOrder(t *testing.T) {
	c := buildABC(t)
	_, err := c.AddBus("z", []string{"A"}, true)
	require.NoError(t, err)
	_, err = c.AddBus("a", []string{"B"}, true)
	require.NoError(t, err)

	names := []string{}
	for _, b := range c.Buses() {
		names = append(names, b.Name)
	}
	assert.Equal(t, []string{"z", "a"}, names)

	stops := c.Stops()
	require.Len(t, stops, 3)
	assert.Equal(t, "C", stops[2].Name)
	assert.Equal(t, 2, c.BusCount())
}
