package main

import "github.com/fieldwork/fsm_backend/internal/commands"

// @title FSM Ledger API
// @version 1.0
// @description Automatic journal entries for field-service invoices and completed jobs.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	commands.Execute()
}
