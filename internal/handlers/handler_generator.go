package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/dto"
	"github.com/fieldwork/fsm_backend/internal/middleware"
)

type generatorHandler struct {
	generators portssvc.GeneratorSvcFacade
}

// registerGeneratorRoutes registers the event-driven journal generation routes.
func registerGeneratorRoutes(rg *gin.RouterGroup, generators portssvc.GeneratorSvcFacade) {
	h := &generatorHandler{generators: generators}

	rg.POST("/invoices/:invoiceID/journal-entry", h.generateForInvoice)
	rg.POST("/jobs/:jobID/journal-entry", h.generateForJob)
}

// generateForInvoice godoc
// @Summary Generate the journal entry of an invoice
// @Description Debits accounts receivable and credits revenue for the invoice total.
// @Description Returns the existing entry when one was already generated.
// @Tags generators
// @Produce  json
// @Param   invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.ExistingEntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Invoice or account not found"
// @Failure 422 {object} ErrorResponse "Invoice amount is not positive"
// @Failure 500 {object} ErrorResponse "Failed to generate journal entry"
// @Security BearerAuth
// @Router /invoices/{invoiceID}/journal-entry [post]
func (h *generatorHandler) generateForInvoice(c *gin.Context) {
	invoiceID := c.Param("invoiceID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("invoice_id", invoiceID))

	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}

	entryID, err := h.generators.GenerateForInvoice(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate journal entry")
		return
	}
	logger.Info("Journal entry generated", slog.String("entry_id", entryID), slog.String("requested_by", userID))
	c.JSON(http.StatusOK, dto.ExistingEntryResponse{EntryID: entryID})
}

// generateForJob godoc
// @Summary Generate the journal entry of a completed job
// @Description Debits labor, material and equipment costs and credits inventory for their total.
// @Description Returns the existing entry when one was already generated.
// @Tags generators
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Success 200 {object} dto.ExistingEntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Job or account not found"
// @Failure 422 {object} ErrorResponse "Job not completed or without costs"
// @Failure 500 {object} ErrorResponse "Failed to generate journal entry"
// @Security BearerAuth
// @Router /jobs/{jobID}/journal-entry [post]
func (h *generatorHandler) generateForJob(c *gin.Context) {
	jobID := c.Param("jobID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("job_id", jobID))

	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}

	entryID, err := h.generators.GenerateForJobCompletion(c.Request.Context(), jobID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate journal entry")
		return
	}
	logger.Info("Journal entry generated", slog.String("entry_id", entryID), slog.String("requested_by", userID))
	c.JSON(http.StatusOK, dto.ExistingEntryResponse{EntryID: entryID})
}
