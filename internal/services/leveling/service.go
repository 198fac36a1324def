// Package leveling maps cumulative XP to levels and progress display
// values. Levels are fixed-width bands of XPPerLevel, numbered from 1.
package leveling

// Config holds configuration for the leveling engine
type Config struct {
	XPPerLevel int
}

// DefaultConfig returns the default leveling configuration
func DefaultConfig() Config {
	return Config{
		XPPerLevel: 200,
	}
}

// Service computes level and progress values from cumulative XP
type Service struct {
	xpPerLevel int
}

// New creates a new leveling Service
func New(cfg Config) *Service {
	if cfg.XPPerLevel <= 0 {
		cfg.XPPerLevel = DefaultConfig().XPPerLevel
	}
	return &Service{
		xpPerLevel: cfg.XPPerLevel,
	}
}

// Level returns the level for a cumulative XP total. 0 XP is level 1.
func (s *Service) Level(xp int) int {
	return xp/s.xpPerLevel + 1
}

// ProgressPercent returns how far into the current level band the XP
// total is, truncated to an integer in [0, 100). Exactly 0 at band
// boundaries.
func (s *Service) ProgressPercent(xp int) int {
	xpInLevel := xp - (s.Level(xp)-1)*s.xpPerLevel
	return xpInLevel * 100 / s.xpPerLevel
}

// XPToNextLevel returns the XP still needed to reach the next level
func (s *Service) XPToNextLevel(xp int) int {
	return s.xpPerLevel - xp%s.xpPerLevel
}

// Summary aggregates the level values for a cumulative XP total
type Summary struct {
	XP              int `json:"xp"`
	Level           int `json:"level"`
	ProgressPercent int `json:"progress_percent"`
	XPToNextLevel   int `json:"xp_to_next_level"`
}

// Summarize returns the full level summary for a cumulative XP total
func (s *Service) Summarize(xp int) Summary {
	return Summary{
		XP:              xp,
		Level:           s.Level(xp),
		ProgressPercent: s.ProgressPercent(xp),
		XPToNextLevel:   s.XPToNextLevel(xp),
	}
}
