package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	model "github.com/sh5080/vectify-go/pkg/types/models"
)

// InMemoryDigitalizationImpl는 인메모리 이력 저장소 구현체입니다
type InMemoryDigitalizationImpl struct {
	records map[string]model.Digitalization
	lock    sync.RWMutex
}

// 인터페이스 구현 확인
var _ _interface.DigitalizationRepository = (*InMemoryDigitalizationImpl)(nil)

// NewInMemoryDigitalizationRepository는 새 인메모리 이력 저장소를 생성합니다
func NewInMemoryDigitalizationRepository() *InMemoryDigitalizationImpl {
	return &InMemoryDigitalizationImpl{
		records: make(map[string]model.Digitalization),
	}
}

// Create는 이력을 저장합니다. 같은 ID가 있으면 오류입니다.
func (db *InMemoryDigitalizationImpl) Create(ctx context.Context, record *model.Digitalization) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("이력 ID가 비어 있습니다")
	}

	db.lock.Lock()
	defer db.lock.Unlock()

	if _, exists := db.records[record.ID]; exists {
		return fmt.Errorf("이미 존재하는 이력입니다: %s", record.ID)
	}
	db.records[record.ID] = *record
	return nil
}

// Update는 기존 이력을 덮어씁니다
func (db *InMemoryDigitalizationImpl) Update(ctx context.Context, record *model.Digitalization) error {
	if record == nil || record.ID == "" {
		return fmt.Errorf("이력 ID가 비어 있습니다")
	}

	db.lock.Lock()
	defer db.lock.Unlock()

	if _, exists := db.records[record.ID]; !exists {
		return fmt.Errorf("이력을 찾을 수 없습니다: %s", record.ID)
	}
	db.records[record.ID] = *record
	return nil
}

// Get은 ID로 이력을 조회합니다
func (db *InMemoryDigitalizationImpl) Get(ctx context.Context, id string) (*model.Digitalization, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	record, exists := db.records[id]
	if !exists {
		return nil, nil // 이력 없음 (에러 아님)
	}
	return &record, nil
}

// ListByUser는 사용자의 이력을 최신순으로 반환합니다
func (db *InMemoryDigitalizationImpl) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Digitalization, error) {
	db.lock.RLock()
	records := make([]model.Digitalization, 0)
	for _, record := range db.records {
		if record.UserID == userID {
			records = append(records, record)
		}
	}
	db.lock.RUnlock()

	sortNewestFirst(records)
	return paginate(records, limit, offset), nil
}

// InMemorySubscriptionImpl는 인메모리 구독 저장소 구현체입니다
type InMemorySubscriptionImpl struct {
	subscriptions map[string]model.Subscription
	lock          sync.RWMutex
}

var _ _interface.SubscriptionRepository = (*InMemorySubscriptionImpl)(nil)

// NewInMemorySubscriptionRepository는 새 인메모리 구독 저장소를 생성합니다
func NewInMemorySubscriptionRepository() *InMemorySubscriptionImpl {
	return &InMemorySubscriptionImpl{
		subscriptions: make(map[string]model.Subscription),
	}
}

func (db *InMemorySubscriptionImpl) GetByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	sub, exists := db.subscriptions[userID]
	if !exists {
		return nil, nil
	}
	return &sub, nil
}

func (db *InMemorySubscriptionImpl) GetByPayPalID(ctx context.Context, paypalSubscriptionID string) (*model.Subscription, error) {
	if paypalSubscriptionID == "" {
		return nil, nil
	}

	db.lock.RLock()
	defer db.lock.RUnlock()

	for _, sub := range db.subscriptions {
		if sub.PayPalSubscriptionID == paypalSubscriptionID {
			return &sub, nil
		}
	}
	return nil, nil
}

// Save는 사용자 ID 기준으로 구독을 저장하거나 덮어씁니다
func (db *InMemorySubscriptionImpl) Save(ctx context.Context, subscription *model.Subscription) error {
	if subscription == nil || subscription.UserID == "" {
		return fmt.Errorf("구독 사용자 ID가 비어 있습니다")
	}

	db.lock.Lock()
	defer db.lock.Unlock()

	db.subscriptions[subscription.UserID] = *subscription
	return nil
}

// sortNewestFirst는 생성 시각 내림차순으로 정렬합니다. 같으면 ID 순입니다.
func sortNewestFirst(records []model.Digitalization) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID < records[j].ID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
}

// paginate는 offset부터 limit개를 잘라냅니다. limit이 0 이하이면 나머지 전체입니다.
func paginate(records []model.Digitalization, limit, offset int) []model.Digitalization {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(records) {
		return []model.Digitalization{}
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}
	return records
}
