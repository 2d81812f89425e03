package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	model "github.com/sh5080/vectify-go/pkg/types/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQS struct {
	inputs []*sqs.SendMessageInput
	err    error
}

func (f *fakeSQS) SendMessage(ctx context.Context, in *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{}, nil
}

func TestSQSPublish(t *testing.T) {
	fake := &fakeSQS{}
	publisher := NewSqsPublisherWithClient(fake, "https://sqs.eu-west-1.amazonaws.com/123/vectify")

	event := model.DigitalizationEvent{
		DigitalizationID: "d-1",
		UserID:           "u-1",
		Type:             "drawing",
		Status:           "completed",
		DrawingSource:    "placeholder",
		ProcessingTime:   420,
		OccurredAt:       time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, publisher.Publish(t.Context(), event))

	require.Len(t, fake.inputs, 1)
	in := fake.inputs[0]
	assert.Equal(t, "https://sqs.eu-west-1.amazonaws.com/123/vectify", *in.QueueUrl)
	assert.Equal(t, "completed", *in.MessageAttributes["status"].StringValue)

	var decoded model.DigitalizationEvent
	require.NoError(t, json.Unmarshal([]byte(*in.MessageBody), &decoded))
	assert.Equal(t, event, decoded)
}

func TestSQSPublishError(t *testing.T) {
	publisher := NewSqsPublisherWithClient(&fakeSQS{err: errors.New("throttled")}, "q")
	err := publisher.Publish(t.Context(), model.DigitalizationEvent{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
}
