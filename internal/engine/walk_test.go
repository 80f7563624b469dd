package engine

import (
	"context"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seed-almanac/category"
	"seed-almanac/internal/almanac"
)

func TestTraceForward(t *testing.T) {
	e := newSampleEngine(t)

	path, err := e.Trace(category.New(category.Seed, 79), category.Location)
	require.NoError(t, err)

	want := []int64{79, 81, 81, 81, 74, 78, 78, 82}
	require.Len(t, path, len(want), spew.Sdump(path))

	for i, v := range path {
		assert.Equal(t, category.DefaultChain.Categories()[i], v.Category())
		assert.Equal(t, want[i], v.Magnitude())
	}
}

func TestTraceBackwardHopCount(t *testing.T) {
	e := newSampleEngine(t)

	for _, loc := range []int64{0, 35, 43, 82, 86, 1000} {
		path, err := e.Trace(category.New(category.Location, loc), category.Seed)
		require.NoError(t, err)
		assert.Len(t, path, category.DefaultChain.Len(), "exactly len-1 hops")
		assert.True(t, path[len(path)-1].Is(category.Seed))
	}
}

func TestOriginInvertsLocate(t *testing.T) {
	e := newSampleEngine(t)

	for _, seed := range sampleSeeds {
		loc, err := e.Locate(seed)
		require.NoError(t, err)

		back, err := e.Origin(loc.Magnitude())
		require.NoError(t, err)
		assert.Equal(t, category.New(category.Seed, seed), back)
	}
}

func TestWalkPartial(t *testing.T) {
	e := newSampleEngine(t)

	got, err := e.Walk(category.New(category.Temperature, 78), category.Water)
	require.NoError(t, err)
	assert.Equal(t, category.New(category.Water, 81), got)

	got, err = e.Walk(category.New(category.Water, 81), category.Water)
	require.NoError(t, err)
	assert.Equal(t, category.New(category.Water, 81), got)
}

func TestWalkStopsAtSentinel(t *testing.T) {
	tables := sampleTables()
	delete(tables, almanac.Pair{From: category.Humidity, To: category.Location})

	e, err := New(category.DefaultChain, tables)
	require.NoError(t, err)

	path, err := e.Trace(category.New(category.Location, 82), category.Seed)
	require.NoError(t, err)
	assert.Equal(t, []category.Value{
		category.New(category.Location, 82),
		category.New(category.Seed, 0),
	}, path)
}

func TestWalkSyntheticChain(t *testing.T) {
	chain := category.MustChain(category.Seed, category.Soil, category.Fertilizer)
	tables := almanac.Tables{
		{From: category.Seed, To: category.Soil}: {
			{Dest: 50, Source: 98, Length: 2},
			{Dest: 52, Source: 50, Length: 48},
		},
		{From: category.Soil, To: category.Fertilizer}: {
			{Dest: 0, Source: 15, Length: 37},
		},
	}

	e, err := New(chain, tables)
	require.NoError(t, err)

	path, err := e.Trace(category.New(category.Fertilizer, 66), category.Seed)
	require.NoError(t, err)
	assert.Equal(t, []category.Value{
		category.New(category.Fertilizer, 66),
		category.New(category.Soil, 66),
		category.New(category.Seed, 64),
	}, path)

	_, err = e.Walk(category.New(category.Location, 1), category.Seed)
	require.ErrorIs(t, err, category.ErrNotInChain)
}

func TestResolveSeeds(t *testing.T) {
	e := newSampleEngine(t, WithWorkers(2))

	got, err := e.ResolveSeeds(context.Background(), sampleSeeds)
	require.NoError(t, err)

	want := []int64{82, 43, 86, 35}
	require.Len(t, got, len(want))

	for i, v := range got {
		assert.Equal(t, category.New(category.Location, want[i]), v)
	}
}

func TestResolveSeedsCancelled(t *testing.T) {
	e := newSampleEngine(t, WithWorkers(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ResolveSeeds(ctx, sampleSeeds)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolveSeedsPropagatesErrors(t *testing.T) {
	tables := sampleTables()
	delete(tables, almanac.Pair{From: category.Light, To: category.Temperature})

	e, err := New(category.DefaultChain, tables)
	require.NoError(t, err)

	_, err = e.ResolveSeeds(context.Background(), sampleSeeds)
	require.ErrorIs(t, err, ErrMissingTable)
}

func TestLowest(t *testing.T) {
	e := newSampleEngine(t)

	got, err := e.Lowest(context.Background(), sampleSeeds)
	require.NoError(t, err)
	assert.Equal(t, category.New(category.Location, 35), got)

	_, err = e.Lowest(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoSeeds)
}
