// Package validator adapts go-playground/validator to echo and renders field messages per locale.
package validator

import (
	"reflect"
	"strings"

	"portfolio/internal/errors"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	estranslations "github.com/go-playground/validator/v10/translations/es"
)

// FallbackLocale is used when no supported locale matches the request.
const FallbackLocale = "en"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate   *validator.Validate
	translator *ut.UniversalTranslator
}

// New creates a validator that reports field names by their json tag and knows the en and es
// message catalogs.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, es.New())

	// Registration only fails for duplicate or malformed built-in templates.
	enTrans, _ := uni.GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, enTrans)
	esTrans, _ := uni.GetTranslator("es")
	_ = estranslations.RegisterDefaultTranslations(validate, esTrans)

	return &CustomValidator{
		validate:   validate,
		translator: uni,
	}
}

// Validate validates a struct against its validate tags.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// FieldErrors renders the validation failures of err as field to message, in locale. It
// returns nil when err is not a validation failure.
func (cv *CustomValidator) FieldErrors(err error, locale string) map[string]string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	trans, _ := cv.translator.FindTranslator(locale, FallbackLocale)
	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldPath(fieldErr)] = fieldErr.Translate(trans)
	}

	return fields
}

// Supports reports whether messages can be rendered in locale.
func (cv *CustomValidator) Supports(locale string) bool {
	_, found := cv.translator.GetTranslator(locale)

	return found
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// fieldPath drops the top level struct name from the namespace, e.g. "genres[1]".
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}

	return fieldErr.Field()
}
