package model

import "time"

// Snapshot is the archived result of one sync run.
type Snapshot struct {
	RunID      string       `yaml:"run_id"`
	Mode       string       `yaml:"mode"`
	Username   string       `yaml:"username"`
	StartedAt  time.Time    `yaml:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at"`
	Rows       []SummaryRow `yaml:"rows"`
}
