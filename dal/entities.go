package dal

import (
	"time"
)

const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusNoData    = "no_data"
	RunStatusFailed    = "failed"
)

type AnalysisRun struct {
	Id         string
	StartedAt  time.Time
	FinishedAt *time.Time
	Query      string
	Mode       string // Online or Offline
	Status     string
	ReportPath string
}

// FetchOutcome records what one target produced in one run. Failure is empty on success.
type FetchOutcome struct {
	RunId     string
	Platform  string
	Identity  string
	FetchedAt time.Time
	ItemCount int
	Failure   string
}
