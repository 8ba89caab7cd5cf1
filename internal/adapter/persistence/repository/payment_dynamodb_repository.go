package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mercadopago_sync/internal/domain/entities"
	"mercadopago_sync/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
}

type paymentItem struct {
	ID              string                 `dynamodbav:"id"`
	Status          string                 `dynamodbav:"status"`
	PaymentResponse map[string]interface{} `dynamodbav:"payment_response,omitempty"`
}

// PaymentDynamoRepository reads and updates payments owned by the host
// application.
//
// Table requirements:
//   - PK: id (string)
//
// Only the status and payment_response attributes are ever written.
type PaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb dynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

// GetByID returns the zero Payment when no item exists.
func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMapWithOptions(out.Item, &it, func(o *attributevalue.DecoderOptions) {
		o.UseNumber = true
	}); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it)
}

func (r *PaymentDynamoRepository) UpdateStatusAndResponse(ctx context.Context, p entities.Payment) error {
	response, err := paymentResponseAttribute(p.PaymentResponse)
	if err != nil {
		return err
	}

	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: p.ID},
		},
		UpdateExpression:    aws.String("SET #status = :status, #payment_response = :payment_response"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":               "id",
			"#status":           "status",
			"#payment_response": "payment_response",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":           &types.AttributeValueMemberS{Value: string(p.Status)},
			":payment_response": response,
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return fmt.Errorf("%w: id=%s", interfaces.ErrPaymentNotFound, p.ID)
		}
		return err
	}
	return nil
}

// paymentResponseAttribute stores a JSON object as a map and anything else
// as NULL. Numbers keep their literal text.
func paymentResponseAttribute(raw json.RawMessage) (types.AttributeValue, error) {
	if len(raw) == 0 {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var m map[string]interface{}
	if err := dec.Decode(&m); err != nil || m == nil {
		return &types.AttributeValueMemberNULL{Value: true}, nil
	}
	av, err := attributevalue.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal payment_response: %w", err)
	}
	return av, nil
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	p := entities.Payment{
		ID:     it.ID,
		Status: entities.PaymentStatus(it.Status),
	}
	if it.PaymentResponse != nil {
		b, err := json.Marshal(jsonNumbers(it.PaymentResponse))
		if err != nil {
			return entities.Payment{}, err
		}
		p.PaymentResponse = b
	}
	return p, nil
}

// jsonNumbers swaps attributevalue.Number for json.Number so numbers are
// written back unquoted and unrounded.
func jsonNumbers(v interface{}) interface{} {
	switch t := v.(type) {
	case attributevalue.Number:
		return json.Number(t)
	case map[string]interface{}:
		for k, e := range t {
			t[k] = jsonNumbers(e)
		}
		return t
	case []interface{}:
		for i, e := range t {
			t[i] = jsonNumbers(e)
		}
		return t
	default:
		return v
	}
}
