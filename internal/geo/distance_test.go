package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	t.Run("Zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(40.7128, -74.0060, 40.7128, -74.0060))
	})

	t.Run("Symmetric", func(t *testing.T) {
		d1 := Distance(40.7128, -74.0060, 40.7580, -73.9855)
		d2 := Distance(40.7580, -73.9855, 40.7128, -74.0060)
		assert.Equal(t, d1, d2)
	})

	t.Run("NYC to LA roughly 2445 miles", func(t *testing.T) {
		d := Distance(40.7128, -74.0060, 34.0522, -118.2437)
		assert.InDelta(t, 2445, d, 15)
	})

	t.Run("Short hop stays under a mile", func(t *testing.T) {
		// Two seed-user locations a few blocks apart in lower Manhattan.
		d := Distance(40.7128, -74.0060, 40.7150, -74.0080)
		assert.Greater(t, d, 0.0)
		assert.Less(t, d, 1.0)
	})

	t.Run("Antipodal points near half circumference", func(t *testing.T) {
		d := Distance(0, 0, 0, 180)
		assert.InDelta(t, earthRadiusMiles*3.14159265, d, 1)
	})
}
