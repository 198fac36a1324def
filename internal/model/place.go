package model

// Place is a point of interest from the catalog
type Place struct {
	Title     string  `json:"title" yaml:"title"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
	Category  string  `json:"category" yaml:"category"`
	Info      string  `json:"info,omitempty" yaml:"info,omitempty"`
}

// Marker is the marker data handed to the map-rendering component.
// The core never builds map markup itself, only this shape.
type Marker struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Title     string  `json:"title"`
	Color     string  `json:"color"`
	Category  string  `json:"category"`
	Info      string  `json:"info,omitempty"`
}

// Course is a named, ordered list of recommended place names
type Course struct {
	Name   string   `json:"name" yaml:"name"`
	Places []string `json:"places" yaml:"places"`
}
