package utils

import (
	"reflect"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sh5080/vectify-go/pkg/apperrors"
)

// ParseAndValidate는 쿼리 파라미터를 DTO로 변환하고 검증합니다.
// queries: 요청 쿼리 맵
// dto: 변환될 DTO 구조체 포인터 (빈 구조체 전달)
// 반환값: 에러가 있으면 apperrors.InvalidRequest, 성공 시 nil 반환
func ParseAndValidate(queries map[string]string, dto interface{}) error {
	validate := NewValidator()
	if queries == nil {
		return apperrors.InvalidRequest("queries가 nil입니다")
	}

	// 타입 검사 - dto는 포인터여야 함
	dtoValue := reflect.ValueOf(dto)
	if dtoValue.Kind() != reflect.Ptr || dtoValue.IsNil() {
		return apperrors.InvalidRequest("DTO는 유효한 포인터 타입이어야 합니다")
	}

	// dto 구조체의 값과 타입 정보 가져오기
	dtoElem := dtoValue.Elem()
	dtoType := dtoElem.Type()

	// 구조체가 아니면 오류 반환
	if dtoElem.Kind() != reflect.Struct {
		return apperrors.InvalidRequest("DTO는 구조체여야 합니다")
	}

	// 구조체의 각 필드를 쿼리 파라미터에서 채우기
	for i := 0; i < dtoElem.NumField(); i++ {
		field := dtoElem.Field(i)
		fieldType := dtoType.Field(i)

		fieldName := jsonFieldName(fieldType)
		// 쿼리 파라미터에서 값 가져오기
		queryValue, exists := queries[fieldName]
		if !exists || queryValue == "" {
			continue // 값이 없으면 건너뜀
		}

		// 필드 타입에 따라 값 변환
		switch field.Kind() {
		case reflect.String:
			field.SetString(queryValue)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			intVal, err := strconv.ParseInt(queryValue, 10, 64)
			if err == nil {
				field.SetInt(intVal)
			} else {
				Debug("dto", "필드 %s의 값 변환 실패: %v", fieldName, err)
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			uintVal, err := strconv.ParseUint(queryValue, 10, 64)
			if err == nil {
				field.SetUint(uintVal)
			} else {
				Debug("dto", "필드 %s의 값 변환 실패: %v", fieldName, err)
			}
		case reflect.Float32, reflect.Float64:
			floatVal, err := strconv.ParseFloat(queryValue, 64)
			if err == nil {
				field.SetFloat(floatVal)
			} else {
				Debug("dto", "필드 %s의 값 변환 실패: %v", fieldName, err)
			}
		case reflect.Bool:
			boolVal, err := strconv.ParseBool(queryValue)
			if err == nil {
				field.SetBool(boolVal)
			} else {
				Debug("dto", "필드 %s의 값 변환 실패: %v", fieldName, err)
			}
		default:
			Debug("dto", "필드 %s의 타입 %s은(는) 지원되지 않습니다", fieldName, field.Kind())
		}
	}

	// 채워진 DTO 검증
	return validateDto(validate, dto)
}

// ParseBody는 JSON 요청 본문을 DTO로 변환하고 검증합니다
func ParseBody(c *fiber.Ctx, dto interface{}) error {
	if err := c.BodyParser(dto); err != nil {
		return apperrors.InvalidRequest("요청 본문을 해석할 수 없습니다")
	}
	return validateDto(NewValidator(), dto)
}

func validateDto(validate Validator, dto interface{}) error {
	errors := validate.Validate(dto)
	if errors.HasErrors() {
		Debug("dto", "유효성 검증 실패: %s", errors.Error())
		return apperrors.InvalidRequest(errors.Error())
	}
	return nil
}
