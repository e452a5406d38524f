package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fieldwork/fsm_backend/internal/apperrors"
	"github.com/fieldwork/fsm_backend/internal/core/domain"
	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/dto"
	"github.com/fieldwork/fsm_backend/internal/middleware"
)

// journalHandler handles HTTP requests for auto-generated journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// registerJournalRoutes registers journal entry routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := rg.Group("/journal-entries")
	{
		entries.POST("/validate", h.validateLines)
		entries.POST("/auto", h.createAutoEntry)
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.GET("/source/:sourceType/:sourceID", h.getEntryBySource)
	}
}

// validateLines godoc
// @Summary Validate candidate journal lines
// @Description Checks structure and balance of a line set without writing anything
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   lines body dto.ValidateJournalLinesRequest true "Candidate lines"
// @Success 200 {object} dto.ValidateJournalLinesResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /journal-entries/validate [post]
func (h *journalHandler) validateLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ValidateJournalLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	res := h.journalService.ValidateLines(req.Lines)

	// Always send an errors array, even when empty
	errs := res.Errors
	if errs == nil {
		errs = []string{}
	}
	c.JSON(http.StatusOK, dto.ValidateJournalLinesResponse{
		Valid:    res.Valid,
		Balanced: res.Balanced,
		Errors:   errs,
	})
}

// createAutoEntry godoc
// @Summary Create an auto-generated journal entry
// @Description Validates the lines, resolves account codes and stores the entry atomically.
// @Description A second request for the same source returns the entry already stored.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateAutoJournalEntryRequest true "Entry and lines"
// @Success 201 {object} dto.CreateAutoJournalEntryResult
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account code not found, inactive, or not postable"
// @Failure 500 {object} ErrorResponse "Failed to create journal entry"
// @Security BearerAuth
// @Router /journal-entries/auto [post]
func (h *journalHandler) createAutoEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := actingUser(c, logger)
	if !ok {
		return
	}

	var req dto.CreateAutoJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	// Tag the rest of the request with the source being posted and who asked for it
	logger = logger.With(
		slog.String("source_type", string(req.SourceType)),
		slog.String("source_id", req.SourceID),
		slog.String("requested_by", userID),
	)
	res, err := h.journalService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to create journal entry")
		return
	}

	logger.Info("Journal entry written", slog.String("entry_id", res.ID))
	c.JSON(http.StatusCreated, res)
}

// getEntry godoc
// @Summary Get a journal entry
// @Description Retrieves an entry with its lines
// @Tags journal-entries
// @Produce  json
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Journal entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve journal entry"
// @Security BearerAuth
// @Router /journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	entryID := c.Param("entryID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("entry_id", entryID))

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve journal entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// getEntryBySource godoc
// @Summary Find the auto-generated entry of a business event
// @Tags journal-entries
// @Produce  json
// @Param   sourceType path string true "Source type" Enums(INVOICE, JOB_COMPLETION, PAYMENT, EXPENSE, MANUAL)
// @Param   sourceID path string true "Source ID"
// @Success 200 {object} dto.ExistingEntryResponse
// @Failure 400 {object} ErrorResponse "Unknown source type"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "No entry for this source"
// @Failure 500 {object} ErrorResponse "Failed to look up journal entry"
// @Security BearerAuth
// @Router /journal-entries/source/{sourceType}/{sourceID} [get]
func (h *journalHandler) getEntryBySource(c *gin.Context) {
	sourceID := c.Param("sourceID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("source_type", c.Param("sourceType")),
		slog.String("source_id", sourceID),
	)

	// Validate the source type from the path
	sourceType, err := domain.ParseSourceType(c.Param("sourceType"))
	if err != nil {
		respondError(c, logger, apperrors.NewValidationError([]string{err.Error()}), "Failed to look up journal entry")
		return
	}

	entryID, found, err := h.journalService.FindExisting(c.Request.Context(), sourceType, sourceID)
	if err != nil {
		respondError(c, logger, err, "Failed to look up journal entry")
		return
	}
	if !found {
		// No entry generated yet for this source
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "No journal entry for this source"})
		return
	}
	c.JSON(http.StatusOK, dto.ExistingEntryResponse{EntryID: entryID})
}

// listEntries godoc
// @Summary List journal entries
// @Description Lists entry headers newest first. Lines are not included.
// @Tags journal-entries
// @Produce  json
// @Param   sourceType query string false "Only entries of this source type"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list journal entries"
// @Security BearerAuth
// @Router /journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	// Bind query parameters; limit and token are checked by the service
	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	entries, next, err := h.journalService.ListEntries(c.Request.Context(), domain.SourceType(params.SourceType), params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list journal entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToListJournalEntriesResponse(entries, next))
}
