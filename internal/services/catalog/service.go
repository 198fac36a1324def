// Package catalog owns the read-only reference data the rest of the app
// consumes: places, the name-keyed XP award table, category marker
// colors, and recommended courses. The data is loaded once from a YAML
// file and immutable at runtime.
package catalog

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tourmate/tourmate/internal/model"
)

// DefaultXP is awarded for places absent from the XP table
const DefaultXP = 10

// Default map center: Seoul City Hall
const (
	DefaultCenterLat = 37.5665
	DefaultCenterLng = 126.9780
)

// data is the YAML shape of the catalog file
type data struct {
	PlaceXP        map[string]int    `yaml:"place_xp"`
	CategoryColors map[string]string `yaml:"category_colors"`
	DefaultColor   string            `yaml:"default_color"`
	Places         []model.Place     `yaml:"places"`
	Courses        []model.Course    `yaml:"courses"`
}

// Service provides access to the place catalog
type Service struct {
	mu   sync.RWMutex
	data data
}

// New creates a catalog service preloaded with the built-in defaults
func New() *Service {
	return &Service{
		data: defaultData(),
	}
}

// LoadFromFile replaces the catalog with the contents of a YAML file.
// Fields absent from the file keep their defaults.
func (s *Service) LoadFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog file: %w", err)
	}

	var loaded data
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return fmt.Errorf("parsing catalog file: %w", err)
	}

	// Fields absent from the file keep the built-in defaults
	defaults := defaultData()
	if loaded.PlaceXP == nil {
		loaded.PlaceXP = defaults.PlaceXP
	}
	if loaded.CategoryColors == nil {
		loaded.CategoryColors = defaults.CategoryColors
	}
	if loaded.DefaultColor == "" {
		loaded.DefaultColor = defaults.DefaultColor
	}
	if len(loaded.Places) == 0 {
		loaded.Places = defaults.Places
	}
	if len(loaded.Courses) == 0 {
		loaded.Courses = defaults.Courses
	}

	s.mu.Lock()
	s.data = loaded
	s.mu.Unlock()
	return nil
}

// XPFor returns the XP award for visiting a place. Places absent from
// the table award DefaultXP.
func (s *Service) XPFor(placeName string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if xp, ok := s.data.PlaceXP[placeName]; ok {
		return xp
	}
	return DefaultXP
}

// XPTable returns a copy of the name-keyed XP award table
func (s *Service) XPTable() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table := make(map[string]int, len(s.data.PlaceXP))
	for name, xp := range s.data.PlaceXP {
		table[name] = xp
	}
	return table
}

// Places returns all catalog places
func (s *Service) Places() []model.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()
	places := make([]model.Place, len(s.data.Places))
	copy(places, s.data.Places)
	return places
}

// PlacesByCategory returns catalog places in the given category
func (s *Service) PlacesByCategory(category string) []model.Place {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var places []model.Place
	for _, p := range s.data.Places {
		if p.Category == category {
			places = append(places, p)
		}
	}
	return places
}

// Place returns the catalog place with the given title
func (s *Service) Place(title string) (model.Place, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.data.Places {
		if p.Title == title {
			return p, true
		}
	}
	return model.Place{}, false
}

// Markers returns the marker data for every catalog place, colored by
// category, ready to hand to the map-rendering component.
func (s *Service) Markers() []model.Marker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	markers := make([]model.Marker, len(s.data.Places))
	for i, p := range s.data.Places {
		markers[i] = model.Marker{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Title:     p.Title,
			Color:     s.colorFor(p.Category),
			Category:  p.Category,
			Info:      p.Info,
		}
	}
	return markers
}

// colorFor returns the marker color for a category. Caller must hold the lock.
func (s *Service) colorFor(category string) string {
	if color, ok := s.data.CategoryColors[category]; ok {
		return color
	}
	return s.data.DefaultColor
}

// Courses returns all recommended courses
func (s *Service) Courses() []model.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	courses := make([]model.Course, len(s.data.Courses))
	copy(courses, s.data.Courses)
	return courses
}

// Course returns the recommended course with the given name
func (s *Service) Course(name string) (model.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.data.Courses {
		if c.Name == name {
			return c, nil
		}
	}
	return model.Course{}, model.ErrCourseNotFound
}
