package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	model "github.com/sh5080/vectify-go/pkg/types/models"
)

// PgxAPI는 저장소가 사용하는 pgx 연산입니다 (*pgxpool.Pool이 구현)
type PgxAPI interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const digitalizationColumns = `id, user_id, original_filename, original_url, file_size, type, status,
       text_content,
       coalesce(vector_url,'') as vector_url,
       coalesce(png_url,'') as png_url,
       coalesce(drawing_source,'') as drawing_source,
       coalesce(error_message,'') as error_message,
       processing_time, created_at, updated_at`

// PostgresDigitalizationImpl는 Postgres 이력 저장소 구현체입니다
type PostgresDigitalizationImpl struct {
	DB PgxAPI
}

var _ _interface.DigitalizationRepository = (*PostgresDigitalizationImpl)(nil)

func NewPostgresDigitalizationRepository(db PgxAPI) *PostgresDigitalizationImpl {
	return &PostgresDigitalizationImpl{DB: db}
}

func (r *PostgresDigitalizationImpl) Create(ctx context.Context, record *model.Digitalization) error {
	const q = `
insert into digitalizations (id, user_id, original_filename, original_url, file_size, type, status,
                             text_content, vector_url, png_url, drawing_source, error_message,
                             processing_time, created_at, updated_at)
values ($1,$2,$3,$4,$5,$6,$7,$8,nullif($9,''),nullif($10,''),nullif($11,''),nullif($12,''),$13,$14,$15)`
	_, err := r.DB.Exec(ctx, q,
		record.ID, record.UserID, record.OriginalFilename, record.OriginalURL, record.FileSize, record.Type, record.Status,
		record.TextContent, record.VectorURL, record.PNGURL, record.DrawingSource, record.ErrorMessage,
		record.ProcessingTime, record.CreatedAt, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("이력 저장 실패: %v", err)
	}
	return nil
}

func (r *PostgresDigitalizationImpl) Update(ctx context.Context, record *model.Digitalization) error {
	const q = `
update digitalizations
set status = $2, text_content = $3, vector_url = nullif($4,''), png_url = nullif($5,''),
    drawing_source = nullif($6,''), error_message = nullif($7,''), processing_time = $8, updated_at = $9
where id = $1`
	tag, err := r.DB.Exec(ctx, q,
		record.ID, record.Status, record.TextContent, record.VectorURL, record.PNGURL,
		record.DrawingSource, record.ErrorMessage, record.ProcessingTime, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("이력 갱신 실패: %v", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("이력을 찾을 수 없습니다: %s", record.ID)
	}
	return nil
}

func (r *PostgresDigitalizationImpl) Get(ctx context.Context, id string) (*model.Digitalization, error) {
	q := `select ` + digitalizationColumns + ` from digitalizations where id = $1`

	record, err := scanDigitalization(r.DB.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("이력 조회 실패: %v", err)
	}
	return record, nil
}

func (r *PostgresDigitalizationImpl) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Digitalization, error) {
	q := `select ` + digitalizationColumns + `
from digitalizations
where user_id = $1
order by created_at desc, id
offset $2`
	args := []any{userID, max(offset, 0)}
	if limit > 0 {
		q += ` limit $3`
		args = append(args, limit)
	}

	rows, err := r.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("이력 목록 조회 실패: %v", err)
	}
	defer rows.Close()

	records := make([]model.Digitalization, 0)
	for rows.Next() {
		record, err := scanDigitalization(rows)
		if err != nil {
			return nil, fmt.Errorf("이력 읽기 실패: %v", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("이력 목록 조회 실패: %v", err)
	}
	return records, nil
}

func scanDigitalization(row pgx.Row) (*model.Digitalization, error) {
	var record model.Digitalization
	err := row.Scan(
		&record.ID, &record.UserID, &record.OriginalFilename, &record.OriginalURL, &record.FileSize,
		&record.Type, &record.Status, &record.TextContent,
		&record.VectorURL, &record.PNGURL, &record.DrawingSource, &record.ErrorMessage,
		&record.ProcessingTime, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// PostgresSubscriptionImpl는 Postgres 구독 저장소 구현체입니다
type PostgresSubscriptionImpl struct {
	DB PgxAPI
}

var _ _interface.SubscriptionRepository = (*PostgresSubscriptionImpl)(nil)

func NewPostgresSubscriptionRepository(db PgxAPI) *PostgresSubscriptionImpl {
	return &PostgresSubscriptionImpl{DB: db}
}

const subscriptionColumns = `user_id, plan, status,
       coalesce(paypal_subscription_id,'') as paypal_subscription_id,
       coalesce(paypal_plan_id,'') as paypal_plan_id,
       created_at, updated_at`

func (r *PostgresSubscriptionImpl) GetByUser(ctx context.Context, userID string) (*model.Subscription, error) {
	q := `select ` + subscriptionColumns + ` from subscriptions where user_id = $1`
	return r.getOne(ctx, q, userID)
}

func (r *PostgresSubscriptionImpl) GetByPayPalID(ctx context.Context, paypalSubscriptionID string) (*model.Subscription, error) {
	if paypalSubscriptionID == "" {
		return nil, nil
	}
	q := `select ` + subscriptionColumns + ` from subscriptions where paypal_subscription_id = $1 limit 1`
	return r.getOne(ctx, q, paypalSubscriptionID)
}

func (r *PostgresSubscriptionImpl) getOne(ctx context.Context, q string, arg string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.DB.QueryRow(ctx, q, arg).Scan(
		&sub.UserID, &sub.Plan, &sub.Status, &sub.PayPalSubscriptionID, &sub.PayPalPlanID,
		&sub.CreatedAt, &sub.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("구독 조회 실패: %v", err)
	}
	return &sub, nil
}

func (r *PostgresSubscriptionImpl) Save(ctx context.Context, subscription *model.Subscription) error {
	const q = `
insert into subscriptions (user_id, plan, status, paypal_subscription_id, paypal_plan_id, created_at, updated_at)
values ($1,$2,$3,nullif($4,''),nullif($5,''),$6,$7)
on conflict (user_id) do update
set plan = excluded.plan,
    status = excluded.status,
    paypal_subscription_id = excluded.paypal_subscription_id,
    paypal_plan_id = excluded.paypal_plan_id,
    updated_at = excluded.updated_at`
	_, err := r.DB.Exec(ctx, q,
		subscription.UserID, subscription.Plan, subscription.Status,
		subscription.PayPalSubscriptionID, subscription.PayPalPlanID,
		subscription.CreatedAt, subscription.UpdatedAt)
	if err != nil {
		return fmt.Errorf("구독 저장 실패: %v", err)
	}
	return nil
}
