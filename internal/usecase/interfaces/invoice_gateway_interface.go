package interfaces

import (
	"context"

	"jobcard_service/internal/domain/entities"
)

// IInvoiceGateway is the invoice handoff boundary. GenerateInvoice is called
// at most once per completion; the engine records the returned reference and
// never formats an invoice itself.
//
// ValidateForInvoicing returns human-readable reasons; an empty slice means
// the card is billable.

type IInvoiceGateway interface {
	GenerateInvoice(ctx context.Context, card entities.JobCard) (entities.InvoiceRef, error)
	ValidateForInvoicing(card entities.JobCard) []string
}
