// Package form validates dashboard and CLI input before it reaches the backend.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	appErrors "github.com/unclebandit/campaign-dashboard/internal/errors"
)

// Validator wraps go-playground/validator and turns its errors into
// per-field user messages.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "weburl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// Messager lets a form override the generated message per field and tag.
type Messager interface {
	Messages() map[string]string
}

// Validate returns nil or an *appErrors.ValidationError.
func (v *Validator) Validate(f any) error {
	err := v.validate.Struct(f)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var custom map[string]string
	if m, ok := f.(Messager); ok {
		custom = m.Messages()
	}

	out := &appErrors.ValidationError{}
	for _, fe := range fieldErrs {
		if msg, ok := custom[fe.Field()+"."+fe.Tag()]; ok {
			out.Add(fe.Field(), msg)
			continue
		}
		out.Add(fe.Field(), defaultMessage(fe))
	}
	return out
}

func defaultMessage(fe validator.FieldError) string {
	label := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Invalid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s does not match", label)
	case "weburl":
		return "Please enter a valid URL (including https://)"
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}
