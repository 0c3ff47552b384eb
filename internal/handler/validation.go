package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"blogapp/internal/apperror"
)

// field.tag -> message shown to the user
var validationMessages = map[string]string{
	"title.required":           "タイトルを入力してください",
	"title.max":                "タイトルは100文字以内で入力してください",
	"content.required":         "本文を入力してください",
	"content.max":              "本文は5000文字以内で入力してください",
	"email.required":           "有効なメールアドレスを入力してください",
	"email.email":              "有効なメールアドレスを入力してください",
	"password.required":        "パスワードは6文字以上で入力してください",
	"password.min":             "パスワードは6文字以上で入力してください",
	"confirmPassword.required": "パスワードが一致しません",
	"confirmPassword.eqfield":  "パスワードが一致しません",
	"name.required":            "名前を入力してください",
}

var defaultValidator = NewValidator()

// NewValidator reports fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// validateRequest returns a Validation error carrying the message for the
// first failing field.
func (h *Handlers) validateRequest(req interface{}) error {
	v := h.Validate
	if v == nil {
		v = defaultValidator
	}

	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperror.Validation(validationMessage(fieldErrs[0]))
	}

	return apperror.Validation(apperror.MsgInvalidRequest)
}

func validationMessage(fe validator.FieldError) string {
	if msg, ok := validationMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return apperror.MsgInvalidRequest
}
