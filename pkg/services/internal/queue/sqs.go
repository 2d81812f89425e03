package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	model "github.com/sh5080/vectify-go/pkg/types/models"
)

// SQSAPI는 이벤트 발행에 필요한 SQS 연산입니다
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

type SQSImpl struct {
	client   SQSAPI
	queueUrl string
}

// 인터페이스 구현 확인
var _ _interface.EventPublisher = (*SQSImpl)(nil)

// NewSqsPublisher는 AWS 설정으로 새 SQS 이벤트 발행기를 생성합니다
func NewSqsPublisher(cfg aws.Config, queueUrl string) *SQSImpl {
	return NewSqsPublisherWithClient(sqs.NewFromConfig(cfg), queueUrl)
}

// NewSqsPublisherWithClient는 주어진 클라이언트로 이벤트 발행기를 생성합니다
func NewSqsPublisherWithClient(client SQSAPI, queueUrl string) *SQSImpl {
	return &SQSImpl{
		client:   client,
		queueUrl: queueUrl,
	}
}

// Publish는 디지털화 이벤트를 SQS 큐에 전송합니다
func (s *SQSImpl) Publish(ctx context.Context, event model.DigitalizationEvent) error {
	// 메시지를 JSON으로 변환
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("메시지 직렬화 실패: %v", err)
	}

	// SQS에 메시지 전송
	_, err = s.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &s.queueUrl,
		MessageBody: aws.String(string(payload)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"status": {DataType: aws.String("String"), StringValue: aws.String(event.Status)},
			"type":   {DataType: aws.String("String"), StringValue: aws.String(event.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("SQS 메시지 전송 실패: %v", err)
	}

	return nil
}
