package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a system user
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Username  string    `json:"username" db:"username"`
	IsActive  bool      `json:"is_active" db:"is_active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserMiningStats represents aggregate mining activity for a user
type UserMiningStats struct {
	TotalRuns        int        `json:"total_runs"`
	AprioriRuns      int        `json:"apriori_runs"`
	FPGrowthRuns     int        `json:"fp_growth_runs"`
	TotalRules       int        `json:"total_rules"`
	EarliestRun      *time.Time `json:"earliest_run,omitempty"`
	LatestRun        *time.Time `json:"latest_run,omitempty"`
	AvgExecutionMs   float64    `json:"avg_execution_ms"`
	TransactionCount int        `json:"transaction_count"`
}
