package _interface

import (
	"context"

	model "github.com/sh5080/vectify-go/pkg/types/models"
)

// EventPublisher는 처리 이벤트를 큐에 전송하는 인터페이스입니다
type EventPublisher interface {
	// Publish는 디지털화 완료/실패 이벤트를 전송합니다
	Publish(ctx context.Context, event model.DigitalizationEvent) error
}
