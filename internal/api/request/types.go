package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RecordVisitRequest is the request body for recording a visit
type RecordVisitRequest struct {
	PlaceName string  `json:"place_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RateVisitRequest is the request body for rating a visit
type RateVisitRequest struct {
	Rating int `json:"rating"`
}

// EstimateRouteRequest is the request body for a route estimate
type EstimateRouteRequest struct {
	OriginLat float64 `json:"origin_lat"`
	OriginLng float64 `json:"origin_lng"`
	DestLat   float64 `json:"dest_lat"`
	DestLng   float64 `json:"dest_lng"`
	// DestPlace optionally names a catalog place; when set it overrides
	// DestLat/DestLng and enriches the route markers
	DestPlace string `json:"dest_place,omitempty"`
	Mode      string `json:"mode"`
}
