package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	model "github.com/sh5080/vectify-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo는 파티션 키 하나와 단일 속성 인덱스만 지원하는 테스트용 DynamoDB입니다
type fakeDynamo struct {
	mu       sync.Mutex
	key      string
	items    map[string]map[string]types.AttributeValue
	pageSize int
}

func newFakeDynamo(key string) *fakeDynamo {
	return &fakeDynamo{key: key, items: map[string]map[string]types.AttributeValue{}}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(ctx context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &dynamodb.GetItemOutput{Item: f.items[stringAttr(in.Key, f.key)]}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := stringAttr(in.Item, f.key)
	_, exists := f.items[id]
	if in.ConditionExpression != nil {
		switch *in.ConditionExpression {
		case "attribute_not_exists(ID)":
			if exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		case "attribute_exists(ID)":
			if !exists {
				return nil, &types.ConditionalCheckFailedException{}
			}
		}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

// Query는 인덱스 키와 :uid/:sid 값이 같은 항목을 pageSize 단위로 돌려줍니다
func (f *fakeDynamo) Query(ctx context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	attr, value := "", ""
	switch *in.IndexName {
	case digitalizationUserIndex:
		attr, value = "UserID", stringAttr(in.ExpressionAttributeValues, ":uid")
	case subscriptionPayPalIndex:
		attr, value = "paypalSubscriptionId", stringAttr(in.ExpressionAttributeValues, ":sid")
	default:
		return nil, errors.New("unknown index")
	}

	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if stringAttr(item, attr) == value {
			matched = append(matched, item)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return stringAttr(matched[i], f.key) < stringAttr(matched[j], f.key)
	})

	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(in.ExclusiveStartKey["offset"].(*types.AttributeValueMemberN).Value)
	}
	out := &dynamodb.QueryOutput{}
	end := len(matched)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"offset": &types.AttributeValueMemberN{Value: strconv.Itoa(end)},
		}
	}
	out.Items = matched[start:end]
	return out, nil
}

func TestDynamoDigitalizationRepository(t *testing.T) {
	fake := newFakeDynamo("ID")
	fake.pageSize = 2
	repo := NewDynamoDigitalizationRepository(fake, "Digitalizations")
	ctx := t.Context()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	text := "hello"
	elapsed := int64(1200)
	first := record("a", "u1", base)
	first.TextContent = &text
	first.ProcessingTime = &elapsed

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, record("b", "u1", base.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, record("c", "u1", base.Add(2*time.Hour))))
	require.NoError(t, repo.Create(ctx, record("d", "u2", base)))
	assert.Error(t, repo.Create(ctx, record("a", "u1", base)))

	got, err := repo.Get(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.TextContent)
	assert.Equal(t, "hello", *got.TextContent)
	assert.Equal(t, int64(1200), *got.ProcessingTime)
	assert.True(t, base.Equal(got.CreatedAt))

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	assert.Error(t, repo.Update(ctx, record("nope", "u1", base)))

	list, err := repo.ListByUser(ctx, "u1", 0, 0)
	require.NoError(t, err)
	require.Len(t, list, 3, "모든 페이지를 읽어야 합니다")
	assert.Equal(t, []string{"c", "b", "a"}, []string{list[0].ID, list[1].ID, list[2].ID})

	page, err := repo.ListByUser(ctx, "u1", 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].ID)
}

func TestDynamoSubscriptionRepository(t *testing.T) {
	fake := newFakeDynamo("UserID")
	repo := NewDynamoSubscriptionRepository(fake, "Subscriptions")
	ctx := t.Context()

	none, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, none)

	sub := &model.Subscription{UserID: "u1", Plan: "enterprise", Status: "active", PayPalSubscriptionID: "I-9"}
	require.NoError(t, repo.Save(ctx, sub))

	byUser, err := repo.GetByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "enterprise", byUser.Plan)

	byPayPal, err := repo.GetByPayPalID(ctx, "I-9")
	require.NoError(t, err)
	require.NotNil(t, byPayPal)
	assert.Equal(t, "u1", byPayPal.UserID)

	unknown, err := repo.GetByPayPalID(ctx, "I-0")
	require.NoError(t, err)
	assert.Nil(t, unknown)
}

func TestTableDefinitions(t *testing.T) {
	d := DigitalizationTable("Digitalizations")
	assert.Equal(t, "ID", d.PartitionKey)
	assert.Equal(t, [2]string{"UserID", ""}, d.Indexes[digitalizationUserIndex])

	s := SubscriptionTable("Subscriptions")
	assert.Equal(t, "UserID", s.PartitionKey)
	assert.Contains(t, s.Indexes, subscriptionPayPalIndex)
}
