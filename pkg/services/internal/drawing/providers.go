package drawing

import (
	"context"

	client "github.com/sh5080/vectify-go/pkg/clients"
	_interface "github.com/sh5080/vectify-go/pkg/interfaces"
	constants "github.com/sh5080/vectify-go/pkg/types"
)

// HuggingFaceGenerate는 고정 프롬프트로 새 일러스트를 생성하는 단계입니다
type HuggingFaceGenerate struct {
	client *client.HuggingFaceClient
}

func (p *HuggingFaceGenerate) Name() string { return constants.SOURCE_HF_GENERATE }

// Attempt는 소스 참조와 무관하게 고정 프롬프트로 생성합니다
func (p *HuggingFaceGenerate) Attempt(ctx context.Context, _ string) (string, error) {
	return p.client.Generate(ctx, constants.DRAWING_PROMPT)
}

// HuggingFaceEnhance는 원본 이미지를 초해상도로 개선하는 단계입니다
type HuggingFaceEnhance struct {
	client *client.HuggingFaceClient
}

func (p *HuggingFaceEnhance) Name() string { return constants.SOURCE_HF_ENHANCE }

func (p *HuggingFaceEnhance) Attempt(ctx context.Context, sourceReference string) (string, error) {
	return p.client.Enhance(ctx, sourceReference)
}

// DalleGenerate는 OpenAI 이미지 생성 단계입니다
type DalleGenerate struct {
	client *client.OpenAIClient
}

func (p *DalleGenerate) Name() string { return constants.SOURCE_DALLE }

func (p *DalleGenerate) Attempt(ctx context.Context, _ string) (string, error) {
	return p.client.GenerateImage(ctx, constants.DRAWING_PROMPT)
}

// BuildChain은 자격증명이 설정된 공급자만으로 우선순위 체인을 구성합니다.
// 순서: Hugging Face 생성 → Hugging Face 개선 → DALL·E
func BuildChain(hf *client.HuggingFaceClient, openai *client.OpenAIClient) []_interface.DrawingProvider {
	var chain []_interface.DrawingProvider
	if hf.Configured() {
		chain = append(chain, &HuggingFaceGenerate{client: hf}, &HuggingFaceEnhance{client: hf})
	}
	if openai.Configured() {
		chain = append(chain, &DalleGenerate{client: openai})
	}
	return chain
}
