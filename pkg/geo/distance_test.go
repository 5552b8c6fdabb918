package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_Symmetric(t *testing.T) {
	// Дакар Плато и Мбур
	lat1, lng1 := 14.6937, -17.4441
	lat2, lng2 := 14.4199, -16.9619

	forward := Distance(lat1, lng1, lat2, lng2)
	backward := Distance(lat2, lng2, lat1, lng1)

	assert.Equal(t, forward, backward)
}

func TestDistance_ZeroForSamePoint(t *testing.T) {
	assert.Zero(t, Distance(14.6937, -17.4441, 14.6937, -17.4441))
	assert.Zero(t, Distance(0, 0, 0, 0))
}

func TestDistance_KnownValues(t *testing.T) {
	// Дакар Плато -> Мбур, примерно 60 км
	d := Distance(14.6937, -17.4441, 14.4199, -16.9619)
	assert.InDelta(t, 60.0, d, 1.5)

	// Сдвиг по широте на 0.044966 градуса — ровно 5 км по дуге меридиана
	d = Distance(14.6937, -17.4441, 14.6937+0.044966, -17.4441)
	assert.InDelta(t, 5.0, d, 0.01)
}

func TestDistance_NeverNegative(t *testing.T) {
	points := [][4]float64{
		{14.6937, -17.4441, 16.0183, -16.4897},
		{-33.9249, 18.4241, 55.7558, 37.6173},
		{90, 0, -90, 0},
	}

	for _, p := range points {
		assert.GreaterOrEqual(t, Distance(p[0], p[1], p[2], p[3]), 0.0)
	}
}
