package repository

import (
	"context"
	"encoding/json"
	"time"

	"jobcard_service/internal/domain/entities"
	"jobcard_service/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	pkgerrors "github.com/pkg/errors"
)

const (
	defaultJobCardsTableName = "job_cards"
	jobCardsJobNumberIndex   = "job_number-index"
	jobCardsTechnicianIndex  = "assigned_technician_id-index"
)

// jobCardItem is the storage shape of the aggregate. The ledgers are kept as
// JSON documents inside string attributes: they are only ever read and written
// whole, and DynamoDB never needs to filter on their contents.
type jobCardItem struct {
	ID        string `dynamodbav:"id"`
	JobNumber string `dynamodbav:"job_number"`
	Status    string `dynamodbav:"status"`
	Priority  string `dynamodbav:"priority"`

	CustomerID             string `dynamodbav:"customer_id"`
	CustomerName           string `dynamodbav:"customer_name,omitempty"`
	AssignedTechnicianID   string `dynamodbav:"assigned_technician_id"`
	AssignedTechnicianName string `dynamodbav:"assigned_technician_name,omitempty"`

	Title       string   `dynamodbav:"title"`
	Description string   `dynamodbav:"description,omitempty"`
	Tasks       []string `dynamodbav:"tasks,omitempty"`

	LaborEntries  string `dynamodbav:"labor_entries,omitempty"`
	MaterialsUsed string `dynamodbav:"materials_used,omitempty"`
	Approvals     string `dynamodbav:"approvals,omitempty"`
	Notes         string `dynamodbav:"notes,omitempty"`

	EstimatedCost string `dynamodbav:"estimated_cost"`
	ActualCost    string `dynamodbav:"actual_cost,omitempty"`

	InvoiceID string `dynamodbav:"invoice_id,omitempty"`

	CreatedAt              string `dynamodbav:"created_at"`
	ScheduledStartDate     string `dynamodbav:"scheduled_start_date,omitempty"`
	ExpectedCompletionDate string `dynamodbav:"expected_completion_date,omitempty"`
	ActualCompletionDate   string `dynamodbav:"actual_completion_date,omitempty"`
	LastUpdatedBy          string `dynamodbav:"last_updated_by,omitempty"`
	LastUpdatedAt          string `dynamodbav:"last_updated_at"`
}

// JobCardDynamoRepository persists JobCard aggregates in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: job_number-index (PK: job_number)
//   - GSI: assigned_technician_id-index (PK: assigned_technician_id)

type JobCardDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobCardRepository = (*JobCardDynamoRepository)(nil)

func NewJobCardDynamoRepository(ddb *dynamodb.Client) *JobCardDynamoRepository {
	return &JobCardDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOB_CARDS_TABLE", defaultJobCardsTableName),
	}
}

func (r *JobCardDynamoRepository) Create(ctx context.Context, card entities.JobCard) (entities.JobCard, error) {
	it, err := toJobCardItem(card)
	if err != nil {
		return entities.JobCard{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.JobCard{}, pkgerrors.Wrap(err, "marshal job card item")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.JobCard{}, pkgerrors.Wrap(err, "put job card")
	}
	return card, nil
}

func (r *JobCardDynamoRepository) GetByID(ctx context.Context, id string) (entities.JobCard, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.JobCard{}, pkgerrors.Wrap(err, "get job card")
	}
	if len(out.Item) == 0 {
		return entities.JobCard{}, nil
	}

	var it jobCardItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.JobCard{}, pkgerrors.Wrap(err, "unmarshal job card item")
	}
	return fromJobCardItem(it)
}

func (r *JobCardDynamoRepository) GetByJobNumber(ctx context.Context, jobNumber string) (entities.JobCard, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(jobCardsJobNumberIndex),
		KeyConditionExpression: aws.String("job_number = :jn"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":jn": &types.AttributeValueMemberS{Value: jobNumber},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.JobCard{}, pkgerrors.Wrap(err, "query job card by job number")
	}
	if len(out.Items) == 0 {
		return entities.JobCard{}, nil
	}

	var it jobCardItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.JobCard{}, pkgerrors.Wrap(err, "unmarshal job card item")
	}
	// The GSI projection may lag the base table; resolve the full item by PK.
	return r.GetByID(ctx, it.ID)
}

// Save replaces the stored aggregate. Callers serialize writes per card, so a
// full put never loses a concurrent update.
func (r *JobCardDynamoRepository) Save(ctx context.Context, card entities.JobCard) (entities.JobCard, error) {
	it, err := toJobCardItem(card)
	if err != nil {
		return entities.JobCard{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.JobCard{}, pkgerrors.Wrap(err, "marshal job card item")
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.JobCard{}, pkgerrors.Wrap(err, "save job card")
	}
	return card, nil
}

func (r *JobCardDynamoRepository) ListByTechnician(ctx context.Context, technicianID string) ([]entities.JobCard, error) {
	cards := []entities.JobCard{}
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(jobCardsTechnicianIndex),
			KeyConditionExpression: aws.String("assigned_technician_id = :tid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":tid": &types.AttributeValueMemberS{Value: technicianID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, pkgerrors.Wrap(err, "query job cards by technician")
		}
		for _, raw := range out.Items {
			var it jobCardItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, pkgerrors.Wrap(err, "unmarshal job card item")
			}
			card, err := fromJobCardItem(it)
			if err != nil {
				return nil, err
			}
			cards = append(cards, card)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return cards, nil
}

func toJobCardItem(card entities.JobCard) (jobCardItem, error) {
	it := jobCardItem{
		ID:                     card.ID,
		JobNumber:              card.JobNumber,
		Status:                 string(card.Status),
		Priority:               string(card.Priority),
		CustomerID:             card.CustomerID,
		CustomerName:           card.CustomerName,
		AssignedTechnicianID:   card.AssignedTechnicianID,
		AssignedTechnicianName: card.AssignedTechnicianName,
		Title:                  card.Title,
		Description:            card.Description,
		Tasks:                  card.Tasks,
		InvoiceID:              card.InvoiceID,
		CreatedAt:              card.CreatedAt.UTC().Format(time.RFC3339Nano),
		LastUpdatedBy:          card.LastUpdatedBy,
		LastUpdatedAt:          card.LastUpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if !card.ScheduledStartDate.IsZero() {
		it.ScheduledStartDate = card.ScheduledStartDate.UTC().Format(time.RFC3339Nano)
	}
	if !card.ExpectedCompletionDate.IsZero() {
		it.ExpectedCompletionDate = card.ExpectedCompletionDate.UTC().Format(time.RFC3339Nano)
	}
	if card.ActualCompletionDate != nil {
		it.ActualCompletionDate = card.ActualCompletionDate.UTC().Format(time.RFC3339Nano)
	}

	var err error
	if it.LaborEntries, err = encodeLedger(card.LaborEntries); err != nil {
		return jobCardItem{}, err
	}
	if it.MaterialsUsed, err = encodeLedger(card.MaterialsUsed); err != nil {
		return jobCardItem{}, err
	}
	if it.Approvals, err = encodeLedger(card.Approvals); err != nil {
		return jobCardItem{}, err
	}
	if it.Notes, err = encodeLedger(card.Notes); err != nil {
		return jobCardItem{}, err
	}
	estimated, err := json.Marshal(card.EstimatedCost)
	if err != nil {
		return jobCardItem{}, pkgerrors.Wrap(err, "encode estimated cost")
	}
	it.EstimatedCost = string(estimated)
	if card.ActualCost != nil {
		actual, err := json.Marshal(card.ActualCost)
		if err != nil {
			return jobCardItem{}, pkgerrors.Wrap(err, "encode actual cost")
		}
		it.ActualCost = string(actual)
	}
	return it, nil
}

func fromJobCardItem(it jobCardItem) (entities.JobCard, error) {
	card := entities.JobCard{
		ID:                     it.ID,
		JobNumber:              it.JobNumber,
		Status:                 entities.JobCardStatus(it.Status),
		Priority:               entities.JobCardPriority(it.Priority),
		CustomerID:             it.CustomerID,
		CustomerName:           it.CustomerName,
		AssignedTechnicianID:   it.AssignedTechnicianID,
		AssignedTechnicianName: it.AssignedTechnicianName,
		Title:                  it.Title,
		Description:            it.Description,
		Tasks:                  it.Tasks,
		InvoiceID:              it.InvoiceID,
		LastUpdatedBy:          it.LastUpdatedBy,
	}
	card.CreatedAt, _ = time.Parse(time.RFC3339Nano, it.CreatedAt)
	card.LastUpdatedAt, _ = time.Parse(time.RFC3339Nano, it.LastUpdatedAt)
	if it.ScheduledStartDate != "" {
		card.ScheduledStartDate, _ = time.Parse(time.RFC3339Nano, it.ScheduledStartDate)
	}
	if it.ExpectedCompletionDate != "" {
		card.ExpectedCompletionDate, _ = time.Parse(time.RFC3339Nano, it.ExpectedCompletionDate)
	}
	if it.ActualCompletionDate != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.ActualCompletionDate); err == nil {
			card.ActualCompletionDate = &t
		}
	}

	if err := decodeLedger(it.LaborEntries, &card.LaborEntries); err != nil {
		return entities.JobCard{}, err
	}
	if err := decodeLedger(it.MaterialsUsed, &card.MaterialsUsed); err != nil {
		return entities.JobCard{}, err
	}
	if err := decodeLedger(it.Approvals, &card.Approvals); err != nil {
		return entities.JobCard{}, err
	}
	if err := decodeLedger(it.Notes, &card.Notes); err != nil {
		return entities.JobCard{}, err
	}
	if it.EstimatedCost != "" {
		if err := json.Unmarshal([]byte(it.EstimatedCost), &card.EstimatedCost); err != nil {
			return entities.JobCard{}, pkgerrors.Wrap(err, "decode estimated cost")
		}
	}
	if it.ActualCost != "" {
		var actual entities.CostActual
		if err := json.Unmarshal([]byte(it.ActualCost), &actual); err != nil {
			return entities.JobCard{}, pkgerrors.Wrap(err, "decode actual cost")
		}
		card.ActualCost = &actual
	}
	return card, nil
}

func encodeLedger[T any](entries []T) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return "", pkgerrors.Wrap(err, "encode ledger")
	}
	return string(raw), nil
}

func decodeLedger[T any](raw string, into *[]T) error {
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return pkgerrors.Wrap(err, "decode ledger")
	}
	return nil
}
