package dynamodb

import (
	"context"
	"fmt"
	"strings"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"car-registry-api/internal/models"
	"car-registry-api/internal/repositories"
)

// defaultPageSize bounds a single Scan page when the caller does not choose
// one.
const defaultPageSize = 100

// CarAPI is the slice of the DynamoDB client the repository needs. Tests
// substitute a stub; production wires *dynamodb.Client.
type CarAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

// CarRepository implements repositories.CarRepository on a DynamoDB table
// keyed by id.
type CarRepository struct {
	client   CarAPI
	table    string
	pageSize int32
	logger   *logrus.Logger
}

// NewCarRepository creates a DynamoDB-backed car repository. pageSize sets
// the scan page size used when a caller does not choose one; zero or
// negative selects the built-in default.
func NewCarRepository(client CarAPI, table string, pageSize int, logger *logrus.Logger) *CarRepository {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &CarRepository{
		client:   client,
		table:    table,
		pageSize: int32(pageSize),
		logger:   logger,
	}
}

// Create persists a new car with a generated id and fresh timestamps and
// returns the stored record.
func (r *CarRepository) Create(ctx context.Context, input models.CarInput) (*models.Car, error) {
	car := models.NewCar(input)
	if err := car.Validate(); err != nil {
		return nil, fmt.Errorf("Error creating car: %w", err)
	}

	item, err := attributevalue.MarshalMap(car)
	if err != nil {
		return nil, fmt.Errorf("Error creating car: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		r.logFailure("create", car.ID, err)
		return nil, fmt.Errorf("Error creating car: %w", err)
	}

	return car, nil
}

// FindAll retrieves every record, scanning page by page until the store
// reports no continuation key. The accumulated result is unbounded.
func (r *CarRepository) FindAll(ctx context.Context, opts repositories.FindAllOptions) ([]models.Car, error) {
	limit := opts.LimitPerPage
	if limit <= 0 {
		limit = r.pageSize
	}

	var cars []models.Car
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			Limit:             aws.Int32(limit),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			r.logFailure("scan", "", err)
			return nil, fmt.Errorf("Error scanning cars table: %w", err)
		}

		page := make([]models.Car, 0, len(out.Items))
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("Error scanning cars table: %w", err)
		}
		cars = append(cars, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return cars, nil
}

// FindByID retrieves one record. An empty or unknown id yields nil, not an
// error.
func (r *CarRepository) FindByID(ctx context.Context, id string) (*models.Car, error) {
	if id == "" {
		return nil, nil
	}

	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       carKey(id),
	})
	if err != nil {
		r.logFailure("get", id, err)
		return nil, fmt.Errorf("Error getting car by id: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var car models.Car
	if err := attributevalue.UnmarshalMap(out.Item, &car); err != nil {
		return nil, fmt.Errorf("Error getting car by id: %w", err)
	}
	return &car, nil
}

// Update applies the mutable fields present in data and stamps a fresh
// updatedAt, returning the record after mutation. Key presence decides what
// is written; a nil value clears the attribute. Existence is not checked
// here; callers verify it first to avoid upserting.
func (r *CarRepository) Update(ctx context.Context, id string, data map[string]any) (*models.Car, error) {
	if id == "" {
		return nil, repositories.ErrUpdateMissingID
	}

	updatedAt, err := attributevalue.Marshal(time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("Error updating car with id %s: %w", id, err)
	}

	names := map[string]string{"#updatedAt": "updatedAt"}
	values := map[string]types.AttributeValue{":updatedAt": updatedAt}
	var setParts []string

	for _, field := range models.UpdatableFields {
		value, ok := data[field]
		if !ok {
			continue
		}
		av, err := attributevalue.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("Error updating car with id %s: %w", id, err)
		}
		nameKey := fmt.Sprintf("#f%d", len(setParts))
		valueKey := fmt.Sprintf(":v%d", len(setParts))
		names[nameKey] = field
		values[valueKey] = av
		setParts = append(setParts, nameKey+" = "+valueKey)
	}

	if len(setParts) == 0 {
		return nil, repositories.ErrNoUpdatableFields
	}
	setParts = append(setParts, "#updatedAt = :updatedAt")

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       carKey(id),
		UpdateExpression:          aws.String("SET " + strings.Join(setParts, ", ")),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		r.logFailure("update", id, err)
		return nil, fmt.Errorf("Error updating car with id %s: %w", id, err)
	}

	var car models.Car
	if err := attributevalue.UnmarshalMap(out.Attributes, &car); err != nil {
		return nil, fmt.Errorf("Error updating car with id %s: %w", id, err)
	}
	return &car, nil
}

// Delete removes a record and returns its prior state, or nil when the store
// held none.
func (r *CarRepository) Delete(ctx context.Context, id string) (*models.Car, error) {
	if id == "" {
		return nil, repositories.ErrDeleteMissingID
	}

	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.table),
		Key:          carKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		r.logFailure("delete", id, err)
		return nil, fmt.Errorf("Error deleting car with id %s: %w", id, err)
	}
	if len(out.Attributes) == 0 {
		return nil, nil
	}

	var car models.Car
	if err := attributevalue.UnmarshalMap(out.Attributes, &car); err != nil {
		return nil, fmt.Errorf("Error deleting car with id %s: %w", id, err)
	}
	return &car, nil
}

func carKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func (r *CarRepository) logFailure(operation, id string, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     r.table,
		"error":     err.Error(),
	}
	if id != "" {
		fields["id"] = id
	}
	r.logger.WithFields(fields).Error("DynamoDB operation failed")
}
