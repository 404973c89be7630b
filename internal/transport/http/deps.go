package http

import (
	"github.com/verification-api/internal/application/verification"
)

// Deps holds the infrastructure dependencies the router wires into handlers.
// VerificationRepo is any verification.Store: the in-memory map or the
// DynamoDB table, selected in main.
type Deps struct {
	VerificationRepo verification.Store
}
