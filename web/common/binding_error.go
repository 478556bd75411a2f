package common

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FormatBindingError turns gin binding failures into the pt-BR messages
// the API answers with.
func FormatBindingError(err error) string {
	if err == nil {
		return ""
	}

	if err == io.EOF {
		return "Corpo da requisição vazio"
	}

	if syntaxErr, ok := err.(*json.SyntaxError); ok {
		return fmt.Sprintf("JSON inválido na posição %d", syntaxErr.Offset)
	}

	// e.g. a string where a number is expected
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("Campo '%s' deve ser do tipo %s", typeErr.Field, typeErr.Type.String())
	}

	if ve, ok := err.(validator.ValidationErrors); ok {
		var out []string
		for _, fe := range ve {
			out = append(out, formatFieldError(fe))
		}
		return strings.Join(out, ", ")
	}

	return err.Error()
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Campo '%s' é obrigatório", fe.Field())
	case "min":
		return fmt.Sprintf("Campo '%s' deve ser no mínimo %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("Campo '%s' deve ser no máximo %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("Campo '%s' deve ter tamanho %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("Campo '%s' falhou na validação '%s'", fe.Field(), fe.Tag())
}
