package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobStatus is the lifecycle state of a field-service job.
type JobStatus string

const (
	JobScheduled  JobStatus = "SCHEDULED"
	JobInProgress JobStatus = "IN_PROGRESS"
	JobCompleted  JobStatus = "COMPLETED"
	JobCancelled  JobStatus = "CANCELLED"
)

// Job is the read-only view of a field-service job.
type Job struct {
	JobID         string     `json:"jobID"`
	JobNumber     string     `json:"jobNumber"`
	CustomerID    string     `json:"customerID"`
	Title         string     `json:"title"`
	Status        JobStatus  `json:"status"`
	CompletedDate *time.Time `json:"completedDate,omitempty"`
}

// IsCompleted reports whether the job's status or completion date marks it done.
func (j Job) IsCompleted() bool {
	return j.Status == JobCompleted || j.CompletedDate != nil
}

// LaborEntry is time worked on a job.
type LaborEntry struct {
	LaborEntryID string          `json:"laborEntryID"`
	JobID        string          `json:"jobID"`
	Hours        decimal.Decimal `json:"hours"`
	HourlyRate   decimal.Decimal `json:"hourlyRate"`
	TotalCost    decimal.Decimal `json:"totalCost"`
}

// MaterialUsage is material consumed by a job.
type MaterialUsage struct {
	MaterialUsageID string          `json:"materialUsageID"`
	JobID           string          `json:"jobID"`
	MaterialID      string          `json:"materialID"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitCost        decimal.Decimal `json:"unitCost"`
	TotalCost       decimal.Decimal `json:"totalCost"`
}

// EquipmentUsage is equipment time billed against a job.
type EquipmentUsage struct {
	EquipmentUsageID string          `json:"equipmentUsageID"`
	JobID            string          `json:"jobID"`
	EquipmentID      string          `json:"equipmentID"`
	Hours            decimal.Decimal `json:"hours"`
	HourlyRate       decimal.Decimal `json:"hourlyRate"`
	TotalCost        decimal.Decimal `json:"totalCost"`
}

// JobCosts are the per-category cost totals of a job.
type JobCosts struct {
	Labor     Cents
	Material  Cents
	Equipment Cents
}

// Total is the sum of all categories.
func (c JobCosts) Total() Cents {
	return c.Labor + c.Material + c.Equipment
}
