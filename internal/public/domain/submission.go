package domain

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	Genders            = []string{"male", "female", "other"}
	Frequencies        = []string{"daily", "weekly", "monthly", "rarely"}
	SatisfactionScores = []string{"1", "2", "3", "4", "5"}
)

// Submission is the caller-supplied survey answer before it is stamped and stored.
// フィールドの並び順が検証順になる。
type Submission struct {
	Age          string `json:"age" validate:"required"`
	Gender       string `json:"gender" validate:"required,oneof=male female other"`
	Frequency    string `json:"frequency" validate:"required,oneof=daily weekly monthly rarely"`
	Satisfaction string `json:"satisfaction" validate:"required,oneof=1 2 3 4 5"`
	Feedback     string `json:"feedback"`
	UserID       string `json:"userId"`
	DisplayName  string `json:"displayName"`

	// nonString は文字列以外で届いた選択肢項目。存在はしているが選択肢には一致しない。
	nonString map[string]struct{}
}

var enumFields = []string{"gender", "frequency", "satisfaction"}

// MissingFieldError reports the first absent required field.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Required field '%s' is missing", e.Field)
}

// InvalidValueError reports the first field holding a value outside its enum.
type InvalidValueError struct {
	Field string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("Invalid %s value", e.Field)
}

var submissionValidator = newSubmissionValidator()

func newSubmissionValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate は必須項目の存在チェックを全項目について先に行い、その後に選択肢チェックを行う。
// どちらも age, gender, frequency, satisfaction の順で最初の違反だけを返す。
func (s Submission) Validate() error {
	err := submissionValidator.Struct(s)
	var fieldErrors validator.ValidationErrors
	if err != nil {
		var ok bool
		if fieldErrors, ok = err.(validator.ValidationErrors); !ok {
			return err
		}
	}
	for _, fe := range fieldErrors {
		if fe.Tag() == "required" {
			return &MissingFieldError{Field: fe.Field()}
		}
	}
	for _, field := range enumFields {
		if _, bad := s.nonString[field]; bad {
			return &InvalidValueError{Field: field}
		}
		for _, fe := range fieldErrors {
			if fe.Field() == field {
				return &InvalidValueError{Field: field}
			}
		}
	}
	if len(fieldErrors) > 0 {
		return &InvalidValueError{Field: fieldErrors[0].Field()}
	}
	return nil
}

// NewSubmission は任意の JSON オブジェクトから Submission を組み立てる。
// キー欠落・null・空文字・false・0 は未入力として扱う。
// それ以外の文字列でない値は存在扱いにするが、選択肢項目では不正値になる。
func NewSubmission(fields map[string]any) Submission {
	s := Submission{
		Age:          stringField(fields, "age"),
		Gender:       stringField(fields, "gender"),
		Frequency:    stringField(fields, "frequency"),
		Satisfaction: stringField(fields, "satisfaction"),
		Feedback:     stringField(fields, "feedback"),
		UserID:       NormalizeUserID(stringField(fields, "userId")),
		DisplayName:  stringField(fields, "displayName"),
	}
	for _, field := range enumFields {
		if _, isString := fields[field].(string); isString || stringField(fields, field) == "" {
			continue
		}
		if s.nonString == nil {
			s.nonString = make(map[string]struct{})
		}
		s.nonString[field] = struct{}{}
	}
	return s
}

// NormalizeUserID は保存と検索で同じ形になるよう前後の空白を落とす。
func NormalizeUserID(userID string) string {
	return strings.TrimSpace(userID)
}

func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return strconv.FormatBool(v)
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
