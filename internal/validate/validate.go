// Package validate checks input records against their validate tags behind
// the project's error taxonomy. The singleton validator carries English
// translations, json tag names and the finite tag; the first violation in
// field order comes back as a *domain.InvalidParameterError.
package validate

import (
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"saltsizer/internal/domain"
)

var (
	vOnce sync.Once
	v     *validator.Validate
	trans ut.Translator
)

// initValidator builds the singleton validator with English translations and
// json tag names.
func initValidator() {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ = uni.GetTranslator("en")

		v = validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerFinite(v, trans)
	})
}

// Struct checks in against its validate tags. The first violation in field
// order is returned as a *domain.InvalidParameterError carrying the json
// field name; any other validator failure is returned as-is.
func Struct(in any) error {
	initValidator()

	err := v.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &domain.InvalidParameterError{
		Field:      fe.Field(),
		Constraint: constraint(fe),
	}
}

// constraint renders the violated rule without the leading field name; the
// error type already carries the field.
func constraint(fe validator.FieldError) string {
	msg := fe.Translate(trans)
	return strings.TrimSpace(strings.TrimPrefix(msg, fe.Field()))
}

// registerFinite adds the finite tag: a float value that is NaN or an
// infinity fails it.
func registerFinite(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	_ = v.RegisterTranslation("finite", trans,
		func(ut ut.Translator) error {
			return ut.Add("finite", "{0} must be a finite number", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("finite", fe.Field())
			return msg
		},
	)
}
