// Package navigation estimates travel between two coordinates. The
// estimate uses great-circle distance and a constant speed per transport
// mode; it never calls an external routing service.
package navigation

import (
	"github.com/tourmate/tourmate/internal/geo"
	"github.com/tourmate/tourmate/internal/model"
)

// Speed per transport mode, in meters per minute
var speedMetersPerMinute = map[model.TransportMode]float64{
	model.ModeWalk:    67,
	model.ModeTransit: 200,
	model.ModeCar:     500,
}

// Estimate is a computed route estimate
type Estimate struct {
	DistanceMeters float64 `json:"distance_meters"`
	ETAMinutes     float64 `json:"eta_minutes"`
}

// Route is the marker and polyline data handed to the map-rendering
// component for a requested route
type Route struct {
	Estimate Estimate       `json:"estimate"`
	Markers  []model.Marker `json:"markers"`
	Polyline [][2]float64   `json:"polyline"`
}

// Service computes route estimates. Stateless and idempotent.
type Service struct{}

// New creates a new navigation Service
func New() *Service {
	return &Service{}
}

// EstimateRoute computes the straight-line distance and ETA between an
// origin and a destination for the given transport mode
func (s *Service) EstimateRoute(originLat, originLng, destLat, destLng float64, mode model.TransportMode) (*Estimate, error) {
	speed, ok := speedMetersPerMinute[mode]
	if !ok {
		return nil, model.ErrInvalidMode
	}

	distance := geo.DistanceMeters(originLat, originLng, destLat, destLng)
	return &Estimate{
		DistanceMeters: distance,
		ETAMinutes:     distance / speed,
	}, nil
}

// BuildRoute computes an estimate plus the origin/destination markers
// and polyline for the map component
func (s *Service) BuildRoute(originLat, originLng float64, dest model.Place, mode model.TransportMode) (*Route, error) {
	estimate, err := s.EstimateRoute(originLat, originLng, dest.Latitude, dest.Longitude, mode)
	if err != nil {
		return nil, err
	}

	return &Route{
		Estimate: *estimate,
		Markers: []model.Marker{
			{
				Latitude:  originLat,
				Longitude: originLng,
				Title:     "내 위치",
				Color:     "blue",
				Category:  "내 위치",
			},
			{
				Latitude:  dest.Latitude,
				Longitude: dest.Longitude,
				Title:     dest.Title,
				Color:     "red",
				Category:  dest.Category,
				Info:      dest.Info,
			},
		},
		Polyline: [][2]float64{
			{originLat, originLng},
			{dest.Latitude, dest.Longitude},
		},
	}, nil
}
