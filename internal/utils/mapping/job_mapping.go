package mapping

import (
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	"github.com/fieldwork/fsm_backend/internal/models"
)

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		JobID:         m.JobID,
		IssueDate:     m.IssueDate,
		TotalAmount:   m.TotalAmount,
		Status:        domain.InvoiceStatus(m.Status),
	}
}

// ToDomainJob converts a model Job to a domain Job
func ToDomainJob(m models.Job) domain.Job {
	return domain.Job{
		JobID:         m.JobID,
		JobNumber:     m.JobNumber,
		CustomerID:    m.CustomerID,
		Title:         m.Title,
		Status:        domain.JobStatus(m.Status),
		CompletedDate: m.CompletedDate,
	}
}

func ToDomainLaborEntry(m models.LaborEntry) domain.LaborEntry {
	return domain.LaborEntry{
		LaborEntryID: m.LaborEntryID,
		JobID:        m.JobID,
		Hours:        m.Hours,
		HourlyRate:   m.HourlyRate,
		TotalCost:    m.TotalCost,
	}
}

func ToDomainMaterialUsage(m models.MaterialUsage) domain.MaterialUsage {
	return domain.MaterialUsage{
		MaterialUsageID: m.MaterialUsageID,
		JobID:           m.JobID,
		MaterialID:      m.MaterialID,
		Quantity:        m.Quantity,
		UnitCost:        m.UnitCost,
		TotalCost:       m.TotalCost,
	}
}

func ToDomainEquipmentUsage(m models.EquipmentUsage) domain.EquipmentUsage {
	return domain.EquipmentUsage{
		EquipmentUsageID: m.EquipmentUsageID,
		JobID:            m.JobID,
		EquipmentID:      m.EquipmentID,
		Hours:            m.Hours,
		HourlyRate:       m.HourlyRate,
		TotalCost:        m.TotalCost,
	}
}
