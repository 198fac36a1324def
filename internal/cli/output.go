package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case Profile:
		o.printProfile(v)
	case RecordVisitResult:
		o.printRecordVisitResult(v)
	case VisitList:
		o.printVisitList(v)
	case StatsResult:
		o.printStatsResult(v)
	case RouteResult:
		o.printRouteResult(v)
	case PlaceList:
		o.printPlaceList(v)
	case CourseList:
		o.printCourseList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AuthResult response type (matches API)
type AuthResult struct {
	Username     string `json:"username"`
	SessionToken string `json:"session_token"`
}

// LevelSummary response type
type LevelSummary struct {
	XP              int `json:"xp"`
	Level           int `json:"level"`
	ProgressPercent int `json:"progress_percent"`
	XPToNextLevel   int `json:"xp_to_next_level"`
}

// Profile response type
type Profile struct {
	Username string       `json:"username"`
	Level    LevelSummary `json:"level"`
}

// Visit response type
type Visit struct {
	PlaceName string  `json:"place_name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timestamp string  `json:"timestamp"`
	Date      string  `json:"date"`
	XPGained  int     `json:"xp_gained"`
	Rating    *int    `json:"rating"`
}

// VisitList response type
type VisitList []Visit

// RecordVisitResult response type
type RecordVisitResult struct {
	Accepted bool         `json:"accepted"`
	XPGained int          `json:"xp_gained"`
	Level    LevelSummary `json:"level"`
}

// VisitStats response type
type VisitStats struct {
	TotalVisits  int `json:"total_visits"`
	UniquePlaces int `json:"unique_places"`
	TotalXP      int `json:"total_xp"`
}

// StatsResult response type
type StatsResult struct {
	Stats VisitStats   `json:"stats"`
	Level LevelSummary `json:"level"`
}

// RouteEstimate response type
type RouteEstimate struct {
	DistanceMeters float64 `json:"distance_meters"`
	ETAMinutes     float64 `json:"eta_minutes"`
}

// RouteMarker response type
type RouteMarker struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Title     string  `json:"title"`
	Color     string  `json:"color"`
	Category  string  `json:"category"`
	Info      string  `json:"info,omitempty"`
}

// RouteResult response type
type RouteResult struct {
	Estimate RouteEstimate `json:"estimate"`
	Markers  []RouteMarker `json:"markers"`
	Polyline [][2]float64  `json:"polyline"`
}

// Place response type
type Place struct {
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Category  string  `json:"category"`
	Info      string  `json:"info,omitempty"`
}

// PlaceList response type
type PlaceList []Place

// Course response type
type Course struct {
	Name   string   `json:"name"`
	Places []string `json:"places"`
}

// CourseList response type
type CourseList []Course

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Logged in as: %s\n", a.Username)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printLevelSummary(l LevelSummary) {
	fmt.Printf("Level: %d (%d XP, %d%% through, %d XP to next)\n",
		l.Level, l.XP, l.ProgressPercent, l.XPToNextLevel)
}

func (o *Output) printProfile(p Profile) {
	fmt.Printf("Account: %s\n", p.Username)
	o.printLevelSummary(p.Level)
}

func (o *Output) printRecordVisitResult(r RecordVisitResult) {
	if r.Accepted {
		fmt.Printf("Visit recorded: +%d XP\n", r.XPGained)
	} else {
		fmt.Println("Already visited today; no XP credited")
	}
	o.printLevelSummary(r.Level)
}

func (o *Output) printVisitList(visits VisitList) {
	if len(visits) == 0 {
		fmt.Println("No visits recorded")
		return
	}

	fmt.Printf("Visits (%d):\n", len(visits))
	for _, v := range visits {
		ratingStr := ""
		if v.Rating != nil {
			ratingStr = fmt.Sprintf(" %s", strings.Repeat("★", *v.Rating))
		}
		fmt.Printf("  %s  %s (+%d XP)%s\n", v.Timestamp, v.PlaceName, v.XPGained, ratingStr)
	}
}

func (o *Output) printStatsResult(s StatsResult) {
	fmt.Printf("Total Visits: %d\n", s.Stats.TotalVisits)
	fmt.Printf("Unique Places: %d\n", s.Stats.UniquePlaces)
	fmt.Printf("Total XP: %d\n", s.Stats.TotalXP)
	o.printLevelSummary(s.Level)
}

func (o *Output) printRouteResult(r RouteResult) {
	fmt.Printf("Distance: %.0f m\n", r.Estimate.DistanceMeters)
	fmt.Printf("ETA: %.1f min\n", r.Estimate.ETAMinutes)
	for _, m := range r.Markers {
		fmt.Printf("  %s (%.4f, %.4f)\n", m.Title, m.Latitude, m.Longitude)
	}
}

func (o *Output) printPlaceList(places PlaceList) {
	if len(places) == 0 {
		fmt.Println("No places found")
		return
	}

	fmt.Printf("Places (%d):\n", len(places))
	for _, p := range places {
		info := ""
		if p.Info != "" {
			info = " - " + p.Info
		}
		fmt.Printf("  %s [%s] (%.4f, %.4f)%s\n", p.Title, p.Category, p.Latitude, p.Longitude, info)
	}
}

func (o *Output) printCourseList(courses CourseList) {
	if len(courses) == 0 {
		fmt.Println("No courses found")
		return
	}

	for _, c := range courses {
		fmt.Printf("%s:\n", c.Name)
		for i, place := range c.Places {
			fmt.Printf("  %d. %s\n", i+1, place)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
