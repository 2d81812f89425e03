package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// 이력/구독 테이블 스키마 (Supabase의 digitalizations/subscriptions 구조를 따름)
const postgresSchema = `
CREATE TABLE IF NOT EXISTS digitalizations (
	id                TEXT PRIMARY KEY,
	user_id           TEXT NOT NULL,
	original_filename TEXT NOT NULL DEFAULT '',
	original_url      TEXT NOT NULL,
	file_size         BIGINT NOT NULL DEFAULT 0,
	type              TEXT NOT NULL,
	status            TEXT NOT NULL,
	text_content      TEXT,
	vector_url        TEXT,
	png_url           TEXT,
	drawing_source    TEXT,
	error_message     TEXT,
	processing_time   BIGINT,
	created_at        TIMESTAMPTZ NOT NULL,
	updated_at        TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS digitalizations_user_created_idx ON digitalizations (user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS subscriptions (
	user_id                TEXT PRIMARY KEY,
	plan                   TEXT NOT NULL,
	status                 TEXT NOT NULL,
	paypal_subscription_id TEXT,
	paypal_plan_id         TEXT,
	created_at             TIMESTAMPTZ NOT NULL,
	updated_at             TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS subscriptions_paypal_idx ON subscriptions (paypal_subscription_id);
`

// NewPostgresPool은 커넥션 풀을 만들고 연결과 스키마를 확인합니다
func NewPostgresPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres 풀 생성 실패: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres 연결 실패: %v", err)
	}

	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres 스키마 생성 실패: %v", err)
	}

	return pool, nil
}
