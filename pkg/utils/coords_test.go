package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLatitude(t *testing.T) {
	assert.False(t, IsValidLatitude(0), "zero is the absent sentinel")
	assert.True(t, IsValidLatitude(90))
	assert.True(t, IsValidLatitude(-90))
	assert.False(t, IsValidLatitude(90.0001))
	assert.False(t, IsValidLatitude(-90.0001))
	assert.True(t, IsValidLatitude(10.77))
	assert.False(t, IsValidLatitude(math.NaN()))
	assert.False(t, IsValidLatitude(math.Inf(1)))
	assert.False(t, IsValidLatitude(math.Inf(-1)))
}

func TestIsValidLongitude(t *testing.T) {
	assert.False(t, IsValidLongitude(0))
	assert.True(t, IsValidLongitude(180))
	assert.True(t, IsValidLongitude(-180))
	assert.False(t, IsValidLongitude(180.0001))
	assert.False(t, IsValidLongitude(-180.0001))
	assert.True(t, IsValidLongitude(106.70))
	assert.False(t, IsValidLongitude(math.NaN()))
	assert.False(t, IsValidLongitude(math.Inf(1)))
}

func TestIsValidCoordinate(t *testing.T) {
	assert.True(t, IsValidCoordinate(10.77, 106.70))
	assert.False(t, IsValidCoordinate(0, 106.70))
	assert.False(t, IsValidCoordinate(10.77, 0))
	assert.False(t, IsValidCoordinate(0, 0))
}
