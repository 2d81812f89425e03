package utils

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Validator는 구조체 필드의 유효성을 검사하는 인터페이스입니다
type Validator interface {
	Validate(interface{}) ValidationErrors
}

// ValidationErrors는 필드 이름별 첫 번째 검증 오류입니다
type ValidationErrors map[string]string

func (v ValidationErrors) Add(field, message string) {
	v[field] = message
}

func (v ValidationErrors) HasErrors() bool {
	return len(v) > 0
}

// Error는 필드 이름 순으로 정렬한 오류 목록을 반환합니다
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, fmt.Sprintf("%s: %s", field, v[field]))
	}
	return strings.Join(messages, ", ")
}

// StructValidator는 validate 태그로 요청 DTO를 검사합니다.
//
// 지원 규칙 (문자열과 정수 필드):
//   - required: 빈 문자열 / 0 불가
//   - min=n, max=n: 정수는 값, 문자열은 길이 범위
//   - oneof=a b c: 문자열이 나열된 값 중 하나
type StructValidator struct{}

func NewValidator() *StructValidator {
	return &StructValidator{}
}

func (v *StructValidator) Validate(data interface{}) ValidationErrors {
	errs := make(ValidationErrors)

	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		errs.Add("_error", "유효성 검사는 구조체만 가능합니다")
		return errs
	}

	typ := val.Type()
	for i := range val.NumField() {
		tag := typ.Field(i).Tag.Get("validate")
		if tag == "" {
			continue
		}

		name := jsonFieldName(typ.Field(i))
		for _, rule := range strings.Split(tag, ",") {
			// 필드마다 첫 번째 오류만 보고
			if msg := checkRule(val.Field(i), rule); msg != "" {
				errs.Add(name, msg)
				break
			}
		}
	}
	return errs
}

// jsonFieldName은 json 태그 이름을, 없으면 구조체 필드 이름을 반환합니다
func jsonFieldName(field reflect.StructField) string {
	if name, _, _ := strings.Cut(field.Tag.Get("json"), ","); name != "" && name != "-" {
		return name
	}
	return field.Name
}

func checkRule(field reflect.Value, rule string) string {
	name, param, _ := strings.Cut(rule, "=")

	switch name {
	case "required":
		if field.IsZero() {
			return "필수 항목입니다"
		}

	case "min", "max":
		bound, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			return fmt.Sprintf("잘못된 검증 규칙입니다: %s", rule)
		}
		return checkBound(field, name, bound)

	case "oneof":
		if field.Kind() == reflect.String && field.String() != "" {
			allowed := strings.Fields(param)
			if !slices.Contains(allowed, field.String()) {
				return fmt.Sprintf("허용되지 않는 값입니다 (%s)", strings.Join(allowed, ", "))
			}
		}
	}
	return ""
}

// checkBound는 정수 값이나 문자열 길이가 min/max 범위 안인지 확인합니다
func checkBound(field reflect.Value, rule string, bound int64) string {
	var value int64
	unit := ""

	switch field.Kind() {
	case reflect.String:
		if field.String() == "" {
			return ""
		}
		value, unit = int64(len(field.String())), "자"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		value = field.Int()
	default:
		return ""
	}

	if rule == "min" && value < bound {
		return fmt.Sprintf("최소 %d%s 이상이어야 합니다", bound, unit)
	}
	if rule == "max" && value > bound {
		return fmt.Sprintf("최대 %d%s 이하여야 합니다", bound, unit)
	}
	return ""
}

// PaginationRequest는 목록 조회의 limit/offset 기본값과 상한을 적용합니다
func PaginationRequest(limit int, offset int) (int, int) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
