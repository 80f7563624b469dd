package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnitude(t *testing.T) {
	for c := Category(1); int(c) < Total; c++ {
		t.Run(c.String(), func(t *testing.T) {
			assert.Equal(t, int64(-17), New(c, -17).Magnitude())
			assert.Equal(t, c, New(c, 0).Category())
		})
	}
}

func TestSameCategoryIgnoresMagnitude(t *testing.T) {
	assert.True(t, New(Soil, 1).SameCategory(New(Soil, 99)))
	assert.False(t, New(Soil, 5).SameCategory(New(Water, 5)))
}

func TestStepBack(t *testing.T) {
	tests := []struct {
		name     string
		in       Value
		newMag   *int64
		expected Value
	}{
		{"carry new magnitude", New(Soil, 79), ptr(81), New(Seed, 81)},
		{"identity fallback", New(Soil, 10), nil, New(Seed, 10)},
		{"location to humidity", New(Location, 46), ptr(46), New(Humidity, 46)},
		{"temperature to light", New(Temperature, 1), nil, New(Light, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.in.StepBack(DefaultChain, tt.newMag)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStepBackDoesNotMutateInput(t *testing.T) {
	in := New(Water, 7)

	_, err := in.StepBack(DefaultChain, ptr(3))
	require.NoError(t, err)
	assert.Equal(t, New(Water, 7), in)
}

func TestStepBackFromFirstFails(t *testing.T) {
	got, err := New(Seed, 12).StepBack(DefaultChain, nil)
	require.ErrorIs(t, err, ErrNoPredecessor)
	assert.Equal(t, Value{}, got)

	short := MustChain(Water, Light)
	_, err = New(Water, 1).StepBack(short, ptr(2))
	require.ErrorIs(t, err, ErrNoPredecessor)
}

func TestStepBackOutsideChain(t *testing.T) {
	short := MustChain(Seed, Soil)

	_, err := New(Location, 1).StepBack(short, nil)
	require.ErrorIs(t, err, ErrNotInChain)
}

func TestStepForward(t *testing.T) {
	got, err := New(Seed, 79).StepForward(DefaultChain, ptr(81))
	require.NoError(t, err)
	assert.Equal(t, New(Soil, 81), got)

	got, err = New(Humidity, 5).StepForward(DefaultChain, nil)
	require.NoError(t, err)
	assert.Equal(t, New(Location, 5), got)

	_, err = New(Location, 5).StepForward(DefaultChain, nil)
	require.ErrorIs(t, err, ErrNoSuccessor)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "Fertilizer(81)", New(Fertilizer, 81).String())
}

func ptr(v int64) *int64 { return &v }
