package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeatherCacheSetGet(t *testing.T) {
	c := NewWeatherCache()

	_, ok := c.Get("10.77,106.70")
	assert.False(t, ok)

	c.Set("10.77,106.70", "sunny", time.Minute)
	v, ok := c.Get("10.77,106.70")
	assert.True(t, ok)
	assert.Equal(t, "sunny", v)
}

func TestWeatherCacheExpiry(t *testing.T) {
	c := NewWeatherCache()

	c.Set("k", 1, -time.Second)
	_, ok := c.Get("k")
	assert.False(t, ok)
}
