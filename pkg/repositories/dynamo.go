package repository

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sh5080/vectify-go/pkg/db"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	model "github.com/sh5080/vectify-go/pkg/types/models"
)

const (
	// 사용자별 이력 조회용 GSI
	digitalizationUserIndex = "UserID-index"
	// PayPal 구독 ID 조회용 GSI
	subscriptionPayPalIndex = "PayPalSubscriptionID-index"
)

// DynamoAPI는 저장소가 사용하는 DynamoDB 연산입니다
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// DigitalizationTable은 이력 테이블 정의입니다
func DigitalizationTable(name string) db.DynamoTable {
	return db.DynamoTable{
		Name:         name,
		PartitionKey: "ID",
		Indexes:      map[string][2]string{digitalizationUserIndex: {"UserID", ""}},
	}
}

// SubscriptionTable은 구독 테이블 정의입니다
func SubscriptionTable(name string) db.DynamoTable {
	return db.DynamoTable{
		Name:         name,
		PartitionKey: "UserID",
		Indexes:      map[string][2]string{subscriptionPayPalIndex: {"paypalSubscriptionId", ""}},
	}
}

// DynamoDigitalizationImpl는 DynamoDB 이력 저장소 구현체입니다
type DynamoDigitalizationImpl struct {
	client    DynamoAPI
	tableName string
}

var _ _interface.DigitalizationRepository = (*DynamoDigitalizationImpl)(nil)

// NewDynamoDigitalizationRepository는 새 DynamoDB 이력 저장소를 생성합니다
func NewDynamoDigitalizationRepository(client DynamoAPI, tableName string) *DynamoDigitalizationImpl {
	return &DynamoDigitalizationImpl{client: client, tableName: tableName}
}

// Create는 같은 ID가 없을 때만 이력을 저장합니다
func (r *DynamoDigitalizationImpl) Create(ctx context.Context, record *model.Digitalization) error {
	return r.put(ctx, record, aws.String("attribute_not_exists(ID)"))
}

// Update는 기존 이력을 덮어씁니다
func (r *DynamoDigitalizationImpl) Update(ctx context.Context, record *model.Digitalization) error {
	return r.put(ctx, record, aws.String("attribute_exists(ID)"))
}

func (r *DynamoDigitalizationImpl) put(ctx context.Context, record *model.Digitalization, condition *string) error {
	// DynamoDB에 저장할 수 있도록 마샬링
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("이력 마샬 실패: %v", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: condition,
	})
	if err != nil {
		return fmt.Errorf("이력 저장 실패: %v", err)
	}
	return nil
}

// Get은 ID로 이력을 조회합니다
func (r *DynamoDigitalizationImpl) Get(ctx context.Context, id string) (*model.Digitalization, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"ID": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("이력 조회 실패: %v", err)
	}

	// 결과가 없는 경우
	if result.Item == nil {
		return nil, nil
	}

	var record model.Digitalization
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("이력 언마샬 실패: %v", err)
	}
	return &record, nil
}

// ListByUser는 사용자 인덱스를 모두 읽어 최신순으로 정렬한 뒤 잘라냅니다
func (r *DynamoDigitalizationImpl) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Digitalization, error) {
	items, err := queryAll(ctx, r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(digitalizationUserIndex),
		KeyConditionExpression: aws.String("UserID = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("이력 목록 조회 실패: %v", err)
	}

	records := make([]model.Digitalization, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &records); err != nil {
		return nil, fmt.Errorf("이력 언마샬 실패: %v", err)
	}

	sortNewestFirst(records)
	return paginate(records, limit, offset), nil
}

// DynamoSubscriptionImpl는 DynamoDB 구독 저장소 구현체입니다
type DynamoSubscriptionImpl struct {
	client    DynamoAPI
	tableName string
}

var _ _interface.SubscriptionRepository = (*DynamoSubscriptionImpl)(nil)

// NewDynamoSubscriptionRepository는 새 DynamoDB 구독 저장소를 생성합니다
func NewDynamoSubscriptionRepository(client DynamoAPI, tableName string) *DynamoSubscriptionImpl {
	return &DynamoSubscriptionImpl{client: client, tableName: tableName}
}

func (r *DynamoSubscriptionImpl) GetByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"UserID": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("구독 조회 실패: %v", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var sub model.Subscription
	if err := attributevalue.UnmarshalMap(result.Item, &sub); err != nil {
		return nil, fmt.Errorf("구독 언마샬 실패: %v", err)
	}
	return &sub, nil
}

func (r *DynamoSubscriptionImpl) GetByPayPalID(ctx context.Context, paypalSubscriptionID string) (*model.Subscription, error) {
	if paypalSubscriptionID == "" {
		return nil, nil
	}

	items, err := queryAll(ctx, r.client, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subscriptionPayPalIndex),
		KeyConditionExpression: aws.String("paypalSubscriptionId = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: paypalSubscriptionID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("구독 조회 실패: %v", err)
	}
	if len(items) == 0 {
		return nil, nil
	}

	var sub model.Subscription
	if err := attributevalue.UnmarshalMap(items[0], &sub); err != nil {
		return nil, fmt.Errorf("구독 언마샬 실패: %v", err)
	}
	return &sub, nil
}

func (r *DynamoSubscriptionImpl) Save(ctx context.Context, subscription *model.Subscription) error {
	item, err := attributevalue.MarshalMap(subscription)
	if err != nil {
		return fmt.Errorf("구독 마샬 실패: %v", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("구독 저장 실패: %v", err)
	}
	return nil
}

// queryAll은 LastEvaluatedKey가 없을 때까지 모든 페이지를 읽습니다
func queryAll(ctx context.Context, client DynamoAPI, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)

		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
