// Package validator adapts go-playground/validator to echo with English field messages.
package validator

import (
	"reflect"
	"sort"
	"strings"

	"sms/internal/domain/entity"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/pkg/errors"
)

const (
	notBlankTag = "notblank"
	roleTag     = "role"
)

// ValidationError maps JSON field names to human readable messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, name+": "+e.Fields[name])
	}

	return strings.Join(msgs, "; ")
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New builds the validator with English translations and JSON field names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	translator, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, translator)

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}

		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlank)
	_ = validate.RegisterValidation(roleTag, validRole)

	noop := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, roleTag} {
		_ = validate.RegisterTranslation(tag, translator, noop, translateCustom)
	}

	return &CustomValidator{validate: validate, translator: translator}
}

// Validate runs struct validation. Field failures come back as *ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Translate(cv.translator)
	}

	return &ValidationError{Fields: fields}
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case roleTag:
		return fe.Field() + " must be one of student, staff, admin, lms_student"
	default:
		return fe.Field() + " is invalid"
	}
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}

	return false
}

func validRole(fl validator.FieldLevel) bool {
	switch v := fl.Field().Interface().(type) {
	case string:
		return entity.Role(v).IsValid()
	case entity.Role:
		return v.IsValid()
	default:
		return false
	}
}
