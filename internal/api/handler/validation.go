package handler

import (
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// limite do corpo das requisições (séries inline podem ser grandes)
const maxBodySize = 64 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Usar os nomes das tags JSON nas mensagens de erro
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// FieldError descreve uma falha de validação de um campo
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

// decodeAndValidate lê o corpo JSON em dst e aplica as regras de validação.
// Corpo vazio é aceito e mantém os valores zero.
func decodeAndValidate(r *http.Request, w http.ResponseWriter, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(body).Decode(dst); err != nil && err != io.EOF {
		return &requestError{err: err}
	}
	return validate.Struct(dst)
}

func validationDetails(errs validator.ValidationErrors) []FieldError {
	details := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		details = append(details, FieldError{
			Field: strings.TrimPrefix(fe.Namespace(), strings.SplitN(fe.Namespace(), ".", 2)[0]+"."),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return details
}

type requestError struct {
	err error
}

func (e *requestError) Error() string {
	return "requisição inválida: " + e.err.Error()
}

func (e *requestError) Unwrap() error {
	return e.err
}
