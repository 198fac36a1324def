package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMetersZeroForSamePoint(t *testing.T) {
	assert.Zero(t, DistanceMeters(37.5665, 126.9780, 37.5665, 126.9780))
}

func TestDistanceMetersSeoulCityHallToGyeongbokgung(t *testing.T) {
	// Seoul City Hall to Gyeongbokgung, roughly 1.46km
	d := DistanceMeters(37.5665, 126.9780, 37.5796, 126.9770)
	assert.InDelta(t, 1460, d, 15)
}

func TestDistanceMetersIsSymmetric(t *testing.T) {
	a := DistanceMeters(37.5665, 126.9780, 37.5512, 126.9882)
	b := DistanceMeters(37.5512, 126.9882, 37.5665, 126.9780)
	assert.InDelta(t, a, b, 1e-9)
}

func TestDistanceMetersCrossesEquator(t *testing.T) {
	// One degree of latitude is roughly 111km
	d := DistanceMeters(-0.5, 0, 0.5, 0)
	assert.InDelta(t, 111195, d, 200)
}
