package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/fieldwork/fsm_backend/internal/core/ports/services"
	"github.com/fieldwork/fsm_backend/internal/dto"
	"github.com/fieldwork/fsm_backend/internal/middleware"
)

// registerAccountRoutes registers the read-only chart of accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	rg.GET("/accounts", listAccounts(accountService))
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Tags accounts
// @Produce  json
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func listAccounts(accountService portssvc.AccountSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())

		accounts, err := accountService.ListAccounts(c.Request.Context())
		if err != nil {
			respondError(c, logger, err, "Failed to list accounts")
			return
		}
		c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
	}
}
