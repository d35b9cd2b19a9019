package web

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/bankmodel/pkg/amountpkg"
)

// ErrInvalidRequest is returned for request bodies that cannot be decoded.
var ErrInvalidRequest = errors.New("invalid request")

// RegisterValidations registers the custom binding tags on the gin validator.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}

	return v.RegisterValidation("decimal", amountpkg.ValidDecimal)
}

// BindingErrorMsg turns a binding error into the message sent to the client.
func BindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + GetErrorMsg(field)
	}

	return ErrInvalidRequest.Error()
}
