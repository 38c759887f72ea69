// Package model defines shared data structures.
package model

import "time"

// Config defines play settings resolved from flags, env and the config file.
type Config struct {
	AnswersPath  string
	AllowedPath  string
	Daily        bool
	DailySalt    string
	AvoidRecent  int
	RevealStepMs int
	MessageMs    int
}

// StatsConfig defines options for the stats command.
type StatsConfig struct {
	Last  int
	Plain bool
}

// Game modes stored with history records.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// GameRecord captures a finished game.
type GameRecord struct {
	ID        string
	StartedAt time.Time
	EndedAt   time.Time
	Target    string
	Guesses   []string
	Won       bool
	Attempts  int
	Mode      string
}
