package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	validatorengine "github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/golangid/attendo/pkg/helper"
)

// StructValidator struct
type StructValidator struct {
	validator  *validatorengine.Validate
	translator ut.Translator
}

// NewStructValidator using go library
// https://github.com/go-playground/validator (all struct tags will be here)
// field name in error message is taken from json tag
func NewStructValidator() *StructValidator {
	ve := validatorengine.New()
	ve.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")
	entranslations.RegisterDefaultTranslations(ve, trans)

	return &StructValidator{validator: ve, translator: trans}
}

// ValidateStruct function
func (v *StructValidator) ValidateStruct(data interface{}) error {
	if err := v.validator.Struct(data); err != nil {
		switch errs := err.(type) {
		case validatorengine.ValidationErrors:
			multiError := helper.NewMultiError()
			for _, e := range errs {
				multiError.Append(e.Field(), errors.New(e.Translate(v.translator)))
			}
			if multiError.HasError() {
				return multiError
			}
		default:
			return err
		}
	}

	return nil
}
