package constants

import structure "github.com/sh5080/vectify-go/pkg/types/structures"

// PLAN_CATALOG는 판매 중인 구독 플랜 목록입니다
var PLAN_CATALOG = []structure.Plan{
	{
		ID:       PLAN_PRO,
		Name:     "Pro",
		Price:    19,
		Currency: "EUR",
		Interval: "month",
		Features: []string{
			"월 100회 디지털화",
			"고급 OCR",
			"자동 벡터화",
			"형식: TXT, SVG, PNG",
			"우선 지원",
			"저장 공간: 10GB",
			"API 접근",
			"워터마크 없음",
		},
	},
	{
		ID:       PLAN_ENTERPRISE,
		Name:     "Enterprise",
		Price:    99,
		Currency: "EUR",
		Interval: "month",
		Features: []string{
			"무제한 디지털화",
			"프리미엄 OCR",
			"고급 벡터화",
			"모든 형식",
			"24/7 지원",
			"저장 공간: 100GB",
			"전체 API",
			"맞춤 연동",
			"팀 대시보드",
			"고급 분석",
		},
	},
}
