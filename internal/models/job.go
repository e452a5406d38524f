package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Job is the storage row of a field-service job.
type Job struct {
	JobID         string     `db:"job_id"`
	JobNumber     string     `db:"job_number"`
	CustomerID    string     `db:"customer_id"`
	Title         string     `db:"title"`
	Status        string     `db:"status"`
	CompletedDate *time.Time `db:"completed_date"` // Nullable
}

// LaborEntry is the storage row of time worked on a job.
type LaborEntry struct {
	LaborEntryID string          `db:"labor_entry_id"`
	JobID        string          `db:"job_id"`
	Hours        decimal.Decimal `db:"hours"`
	HourlyRate   decimal.Decimal `db:"hourly_rate"`
	TotalCost    decimal.Decimal `db:"total_cost"`
}

// MaterialUsage is the storage row of material consumed by a job.
type MaterialUsage struct {
	MaterialUsageID string          `db:"material_usage_id"`
	JobID           string          `db:"job_id"`
	MaterialID      string          `db:"material_id"`
	Quantity        decimal.Decimal `db:"quantity"`
	UnitCost        decimal.Decimal `db:"unit_cost"`
	TotalCost       decimal.Decimal `db:"total_cost"`
}

// EquipmentUsage is the storage row of equipment time on a job.
type EquipmentUsage struct {
	EquipmentUsageID string          `db:"equipment_usage_id"`
	JobID            string          `db:"job_id"`
	EquipmentID      string          `db:"equipment_id"`
	Hours            decimal.Decimal `db:"hours"`
	HourlyRate       decimal.Decimal `db:"hourly_rate"`
	TotalCost        decimal.Decimal `db:"total_cost"`
}
