package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitcat/catalogue"
)

func validBatch() catalogue.Batch {
	return catalogue.Batch{
		Stops: []catalogue.StopInput{
			{Name: "A", Lat: 55.60, Lng: 37.20},
			{Name: "B", Lat: 55.61, Lng: 37.21},
			{Name: "C", Lat: 55.62, Lng: 37.22},
		},
		Distances: []catalogue.DistanceInput{
			{From: "A", To: "B", Meters: 1000},
			{From: "B", To: "C", Meters: 1000},
		},
		Buses: []catalogue.BusInput{
			{Name: "55", Stops: []string{"A", "B", "C"}},
		},
	}
}

func TestBuild_Valid(t *testing.T) {
	c, err := catalogue.Build(validBatch())
	require.NoError(t, err)

	assert.Equal(t, 3, c.StopCount())
	assert.Equal(t, 1, c.BusCount())
	d, err := c.ResolveDistance("C", "B")
	require.NoError(t, err)
	assert.Equal(t, 1000, d)
	assert.False(t, c.Frozen())
}

func TestBuild_RejectsWholeBatch(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(b *catalogue.Batch)
		want   error
	}{
		{"DuplicateStop", func(b *catalogue.Batch) {
			b.Stops = append(b.Stops, catalogue.StopInput{Name: "A"})
		}, catalogue.ErrDuplicateStop},
		{"DuplicateBus", func(b *catalogue.Batch) {
			b.Buses = append(b.Buses, catalogue.BusInput{Name: "55", Stops: []string{"A"}})
		}, catalogue.ErrDuplicateBus},
		{"UnknownStopInBus", func(b *catalogue.Batch) {
			b.Buses[0].Stops = []string{"A", "Q"}
		}, catalogue.ErrUnknownStop},
		{"UnknownStopInDistance", func(b *catalogue.Batch) {
			b.Distances[0].To = "Q"
		}, catalogue.ErrUnknownStop},
		{"EmptyRoute", func(b *catalogue.Batch) {
			b.Buses[0].Stops = nil
		}, catalogue.ErrInvalidInput},
		{"LatitudeOutOfRange", func(b *catalogue.Batch) {
			b.Stops[1].Lat = 120
		}, catalogue.ErrInvalidInput},
		{"NegativeDistance", func(b *catalogue.Batch) {
			b.Distances[1].Meters = -5
		}, catalogue.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := validBatch()
			tc.mutate(&b)
			c, err := catalogue.Build(b)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
