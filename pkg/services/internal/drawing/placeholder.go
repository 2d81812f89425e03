package drawing

import (
	"bytes"
	"encoding/base64"
	"text/template"

	"github.com/sh5080/vectify-go/pkg/utils"
)

const svgDataPrefix = "data:image/svg+xml;base64,"

// 래스터 슬롯용 보라색 템플릿
var rasterTemplate = template.Must(template.New("raster").Parse(`<svg width="512" height="512" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="grad1" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#667eea;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#764ba2;stop-opacity:1" />
    </linearGradient>
    <filter id="shadow">
      <feDropShadow dx="2" dy="2" stdDeviation="3" flood-color="#000" flood-opacity="0.3"/>
    </filter>
  </defs>
  <rect width="512" height="512" fill="url(#grad1)"/>
  <circle cx="256" cy="200" r="80" fill="#ffffff" opacity="0.9" filter="url(#shadow)"/>
  <text x="256" y="220" text-anchor="middle" fill="#333" font-size="28" font-family="Arial, sans-serif" font-weight="bold">Digitalizado</text>
  <text x="256" y="250" text-anchor="middle" fill="#666" font-size="16" font-family="Arial, sans-serif">{{.Name | html}}</text>
  <path d="M 150 350 Q 256 400 362 350" stroke="#ffffff" stroke-width="3" fill="none" opacity="0.7"/>
  <circle cx="150" cy="350" r="8" fill="#ffffff" opacity="0.8"/>
  <circle cx="256" cy="400" r="8" fill="#ffffff" opacity="0.8"/>
  <circle cx="362" cy="350" r="8" fill="#ffffff" opacity="0.8"/>
</svg>`))

// 벡터 슬롯용 하늘색 템플릿
var vectorTemplate = template.Must(template.New("vector").Parse(`<svg width="512" height="512" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="grad2" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#4facfe;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#00f2fe;stop-opacity:1" />
    </linearGradient>
    <filter id="glow">
      <feGaussianBlur stdDeviation="3" result="coloredBlur"/>
      <feMerge>
        <feMergeNode in="coloredBlur"/>
        <feMergeNode in="SourceGraphic"/>
      </feMerge>
    </filter>
  </defs>
  <rect width="512" height="512" fill="url(#grad2)"/>
  <polygon points="256,120 320,200 280,200 280,320 232,320 232,200 192,200" fill="#ffffff" opacity="0.9" filter="url(#glow)"/>
  <text x="256" y="380" text-anchor="middle" fill="#ffffff" font-size="24" font-family="Arial, sans-serif" font-weight="bold">Vector SVG</text>
  <text x="256" y="410" text-anchor="middle" fill="#ffffff" font-size="14" font-family="Arial, sans-serif">{{.Name | html}}</text>
</svg>`))

// RenderPlaceholder는 소스 파일 이름으로 라벨을 단 SVG 한 쌍을 만듭니다.
// 파일 이름을 얻을 수 없으면 ok가 false입니다. 같은 입력이면 항상 같은 결과를 반환합니다.
func RenderPlaceholder(sourceReference string) (vector string, raster string, ok bool) {
	name := utils.FileBaseName(sourceReference)
	if name == "" {
		return "", "", false
	}

	vector, err := renderSVG(vectorTemplate, name)
	if err != nil {
		return "", "", false
	}
	raster, err = renderSVG(rasterTemplate, name)
	if err != nil {
		return "", "", false
	}
	return vector, raster, true
}

func renderSVG(tmpl *template.Template, name string) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Name string }{Name: name}); err != nil {
		return "", err
	}
	return svgDataPrefix + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
