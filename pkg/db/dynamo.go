package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sh5080/vectify-go/pkg/configs"
)

// DynamoTable은 생성할 테이블의 이름과 파티션 키, 보조 인덱스입니다
type DynamoTable struct {
	Name         string
	PartitionKey string
	// Indexes는 인덱스 이름 → (파티션 키, 정렬 키). 정렬 키가 비어 있으면 파티션 키만 사용합니다.
	Indexes map[string][2]string
}

// LoadAWSConfig는 AWS SDK 설정을 로드합니다.
// 고정 자격증명이 있으면 사용하고, 없으면 기본 자격증명 체인을 사용합니다.
func LoadAWSConfig(ctx context.Context, config configs.AWSConfig) (aws.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(config.Region),
	}

	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			config.AccessKeyID,
			config.SecretAccessKey,
			"",
		)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("AWS 설정 로드 실패: %v", err)
	}
	return cfg, nil
}

// NewDynamoClient는 DynamoDB 클라이언트를 생성합니다.
// AWS_DYNAMODB_ENDPOINT가 있으면 해당 엔드포인트(로컬 DynamoDB 등)를 사용합니다.
func NewDynamoClient(ctx context.Context, config configs.AWSConfig) (*dynamodb.Client, error) {
	cfg, err := LoadAWSConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if config.DynamoDBEndpoint != "" {
			o.BaseEndpoint = aws.String(config.DynamoDBEndpoint)
		}
	})
	return client, nil
}

// CreateTableIfNotExists는 테이블이 없을 경우 생성하고 활성화될 때까지 기다립니다.
func CreateTableIfNotExists(ctx context.Context, client *dynamodb.Client, table DynamoTable) error {
	// 테이블 존재 여부 확인
	exists, err := tableExists(ctx, client, table.Name)
	if err != nil {
		return fmt.Errorf("테이블 존재 여부 확인 실패: %v", err)
	}

	// 테이블이 이미 존재하면 생성하지 않음
	if exists {
		return nil
	}

	attributes := map[string]struct{}{table.PartitionKey: {}}
	var indexes []types.GlobalSecondaryIndex
	for name, keys := range table.Indexes {
		schema := []types.KeySchemaElement{
			{AttributeName: aws.String(keys[0]), KeyType: types.KeyTypeHash},
		}
		attributes[keys[0]] = struct{}{}
		if keys[1] != "" {
			schema = append(schema, types.KeySchemaElement{AttributeName: aws.String(keys[1]), KeyType: types.KeyTypeRange})
			attributes[keys[1]] = struct{}{}
		}
		indexes = append(indexes, types.GlobalSecondaryIndex{
			IndexName:  aws.String(name),
			KeySchema:  schema,
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}

	var definitions []types.AttributeDefinition
	for name := range attributes {
		definitions = append(definitions, types.AttributeDefinition{
			AttributeName: aws.String(name),
			AttributeType: types.ScalarAttributeTypeS,
		})
	}

	input := &dynamodb.CreateTableInput{
		TableName:            aws.String(table.Name),
		AttributeDefinitions: definitions,
		KeySchema: []types.KeySchemaElement{
			{
				AttributeName: aws.String(table.PartitionKey),
				KeyType:       types.KeyTypeHash,
			},
		},
		BillingMode: types.BillingModePayPerRequest,
	}
	if len(indexes) > 0 {
		input.GlobalSecondaryIndexes = indexes
	}

	// 테이블 생성 요청
	if _, err = client.CreateTable(ctx, input); err != nil {
		return fmt.Errorf("테이블 생성 실패: %v", err)
	}

	// 테이블 생성 완료될 때까지 대기
	waiter := dynamodb.NewTableExistsWaiter(client)
	err = waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(table.Name),
	}, 2*time.Minute)
	if err != nil {
		return fmt.Errorf("테이블 생성 완료 대기 실패: %v", err)
	}

	return nil
}

// tableExists는 테이블이 존재하는지 확인합니다.
func tableExists(ctx context.Context, client *dynamodb.Client, tableName string) (bool, error) {
	_, err := client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})

	if err != nil {
		// 테이블이 존재하지 않는 경우
		var notFoundErr *types.ResourceNotFoundException
		if errors.As(err, &notFoundErr) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
