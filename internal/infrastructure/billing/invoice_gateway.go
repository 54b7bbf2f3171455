package billing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	pkgerrors "github.com/pkg/errors"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

const defaultInvoicesTableName = "invoices"

// invoiceItem is the billing handoff record.
//
// Table requirements:
//   - PK: job_card_id (string)
//
// The job card id is the PK on purpose: the conditional put makes a second
// invoice for the same card impossible, whatever the caller does.
type invoiceItem struct {
	JobCardID     string `dynamodbav:"job_card_id"`
	InvoiceID     string `dynamodbav:"invoice_id"`
	InvoiceNumber string `dynamodbav:"invoice_number"`
	JobNumber     string `dynamodbav:"job_number"`
	CustomerID    string `dynamodbav:"customer_id"`
	Amount        string `dynamodbav:"amount"`
	PaymentLink   string `dynamodbav:"payment_link,omitempty"`
	IssuedAt      string `dynamodbav:"issued_at"`
}

// InvoiceGateway issues invoices for completed job cards: it persists the
// invoice record and requests a Mercado Pago checkout preference so the
// customer gets a payment link.
type InvoiceGateway struct {
	ddb       *dynamodb.Client
	prefs     preference.Client
	tableName string
	mockMode  bool
}

var _ interfaces.IInvoiceGateway = (*InvoiceGateway)(nil)

func NewInvoiceGateway(ddb *dynamodb.Client, accessToken string) (*InvoiceGateway, error) {
	g := &InvoiceGateway{
		ddb:       ddb,
		tableName: getenvDefault("INVOICES_TABLE", defaultInvoicesTableName),
	}
	if isInvoiceGatewayMockEnabled() {
		log.Printf("[invoice][gateway] mock mode enabled")
		g.mockMode = true
		return g, nil
	}

	if accessToken == "" {
		log.Printf("[invoice][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Printf("[invoice][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	g.prefs = preference.NewClient(cfg)
	log.Printf("[invoice][gateway] Mercado Pago client initialized")
	return g, nil
}

// ValidateForInvoicing reports what would block issuing an invoice for this
// card. It runs before the cost snapshot exists, so it only checks the raw
// billing inputs.
func (g *InvoiceGateway) ValidateForInvoicing(card entities.JobCard) []string {
	var reasons []string
	if strings.TrimSpace(card.CustomerID) == "" {
		reasons = append(reasons, "customer is required for invoicing")
	}
	if strings.TrimSpace(card.JobNumber) == "" {
		reasons = append(reasons, "job number is required for invoicing")
	}
	if len(card.LaborEntries) == 0 && len(card.MaterialsUsed) == 0 {
		reasons = append(reasons, "nothing billable: no labor or material entries")
	}
	return reasons
}

func (g *InvoiceGateway) GenerateInvoice(ctx context.Context, card entities.JobCard) (entities.InvoiceRef, error) {
	if card.ActualCost == nil {
		return entities.InvoiceRef{}, errors.New("cost snapshot missing, card is not billable")
	}

	ref := entities.InvoiceRef{
		ID:            uuid.NewString(),
		InvoiceNumber: "INV-" + card.JobNumber,
	}

	if g.mockMode {
		ref.PaymentLink = "https://checkout.local/" + ref.ID
		log.Printf("[invoice][gateway] mock invoice issued invoice_id=%s job_card_id=%s", ref.ID, card.ID)
	} else {
		link, err := g.checkoutLink(ctx, ref, card)
		if err != nil {
			return entities.InvoiceRef{}, err
		}
		ref.PaymentLink = link
	}

	if err := g.store(ctx, ref, card); err != nil {
		return entities.InvoiceRef{}, err
	}
	log.Printf("[invoice][gateway] invoice issued invoice_id=%s invoice_number=%s job_card_id=%s total=%.2f",
		ref.ID, ref.InvoiceNumber, card.ID, card.ActualCost.Total)
	return ref, nil
}

func (g *InvoiceGateway) checkoutLink(ctx context.Context, ref entities.InvoiceRef, card entities.JobCard) (string, error) {
	req := preference.Request{
		ExternalReference: ref.InvoiceNumber,
		Items: []preference.ItemRequest{
			{
				ID:        ref.ID,
				Title:     fmt.Sprintf("Service job %s: %s", card.JobNumber, card.Title),
				Quantity:  1,
				UnitPrice: card.ActualCost.Total,
			},
		},
	}
	resp, err := g.prefs.Create(ctx, req)
	if err != nil {
		log.Printf("[invoice][gateway] preference create failed job_card_id=%s err=%v", card.ID, err)
		return "", pkgerrors.Wrap(err, "create checkout preference")
	}
	return resp.InitPoint, nil
}

func (g *InvoiceGateway) store(ctx context.Context, ref entities.InvoiceRef, card entities.JobCard) error {
	it := invoiceItem{
		JobCardID:     card.ID,
		InvoiceID:     ref.ID,
		InvoiceNumber: ref.InvoiceNumber,
		JobNumber:     card.JobNumber,
		CustomerID:    card.CustomerID,
		Amount:        fmt.Sprintf("%.2f", card.ActualCost.Total),
		PaymentLink:   ref.PaymentLink,
		IssuedAt:      time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return pkgerrors.Wrap(err, "marshal invoice item")
	}
	_, err = g.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(g.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#jc)"),
		ExpressionAttributeNames: map[string]string{
			"#jc": "job_card_id",
		},
	})
	if err != nil {
		return pkgerrors.Wrap(err, "store invoice")
	}
	return nil
}

func isInvoiceGatewayMockEnabled() bool {
	for _, key := range []string{"INVOICE_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
