// Package validators is the inbound payload layer: request structs with
// binding tags, the clinic's custom tags on gin's validator engine, and
// conversion of every failure into one httperr.ValidationError.
package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"github.com/6laercio/saude-integrada-api/internal/domain/appointment"
	"github.com/6laercio/saude-integrada-api/internal/domain/doctor"
	"github.com/6laercio/saude-integrada-api/internal/domain/patient"
	"github.com/6laercio/saude-integrada-api/internal/httperr"
)

var registerOnce sync.Once

// Engine returns gin's validator with the clinic tags installed.
func Engine() *validator.Validate {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		panic("validators: gin binding engine is not go-playground/validator")
	}

	registerOnce.Do(func() {
		v.RegisterTagNameFunc(fieldName)

		must(v.RegisterValidation("specialty", func(fl validator.FieldLevel) bool {
			return doctor.Specialty(fl.Field().String()).IsValid()
		}))
		must(v.RegisterValidation("insurance", func(fl validator.FieldLevel) bool {
			return patient.Insurance(fl.Field().String()).IsValid()
		}))
		must(v.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
			return appointment.Status(fl.Field().String()).IsValid()
		}))
		must(v.RegisterValidation("iso8601", func(fl validator.FieldLevel) bool {
			_, err := parseInstant(fl.Field().String())
			return err == nil
		}))
		must(v.RegisterValidation("iso8601date", func(fl validator.FieldLevel) bool {
			_, _, err := parseDateOrInstant(fl.Field().String(), nil)
			return err == nil
		}))
		must(v.RegisterValidation("positive_int", func(fl validator.FieldLevel) bool {
			n, err := strconv.ParseUint(fl.Field().String(), 10, 64)
			return err == nil && n > 0
		}))
	})

	return v
}

func statusNames() []string {
	return lo.Map(appointment.Statuses(), func(s appointment.Status, _ int) string {
		return string(s)
	})
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// fieldName reports errors under the wire name (json, then form tag).
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// ParseID reads a positive integer path parameter.
func ParseID(raw string) (uint, error) {
	id := optionalID(raw)
	if id == nil {
		verr := &httperr.ValidationError{}
		verr.Add("id", "deve ser um inteiro positivo")
		return 0, verr
	}
	return *id, nil
}

// ======================================================
// DECODE
// ======================================================

// DecodeJSON reads the request body into dst and validates it. Type
// mismatches and rule violations are merged into a single ValidationError.
func DecodeJSON(c *gin.Context, dst any) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	return Decode(body, dst)
}

// nullable is implemented by requests that tell an explicit null apart
// from an absent field.
type nullable interface {
	setNull(field string)
}

// Decode decodes body field by field so every type mismatch is reported,
// then runs the binding rules on dst. dst must point to a struct.
func Decode(body []byte, dst any) error {
	verr := &httperr.ValidationError{}
	seen := map[string]bool{}

	if len(bytes.TrimSpace(body)) > 0 {
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			verr.Add("body", "JSON inválido")
			return verr
		}
		decodeFields(raw, dst, verr, seen)
	}

	if err := Engine().Struct(dst); err != nil {
		collect(verr, err, seen)
	}
	return verr.OrNil()
}

func decodeFields(
	raw map[string]json.RawMessage,
	dst any,
	verr *httperr.ValidationError,
	seen map[string]bool,
) {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	nulls, _ := dst.(nullable)

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := fieldName(f)
		if name == "" {
			continue
		}
		value, ok := lookup(raw, name)
		if !ok {
			continue
		}

		if nulls != nil && bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			nulls.setNull(name)
		}
		if err := json.Unmarshal(value, v.Field(i).Addr().Interface()); err != nil {
			verr.Add(name, decodeMessage(err))
			seen[name] = true
		}
	}
}

// lookup matches keys the way encoding/json does: exact name first, then
// case-insensitively.
func lookup(raw map[string]json.RawMessage, name string) (json.RawMessage, bool) {
	if v, ok := raw[name]; ok {
		return v, true
	}
	for k, v := range raw {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// BindQuery binds query string parameters into dst and validates them.
func BindQuery(c *gin.Context, dst any) error {
	Engine()
	if err := c.ShouldBindQuery(dst); err != nil {
		return Translate(err)
	}
	return nil
}

// Translate converts validator output into a ValidationError. Any other
// error is returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	verr := &httperr.ValidationError{}
	if !collect(verr, err, map[string]bool{}) {
		return err
	}
	return verr.OrNil()
}

func collect(verr *httperr.ValidationError, err error, seen map[string]bool) bool {
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) {
		return false
	}
	for _, fe := range fes {
		if seen[fe.Field()] {
			continue
		}
		seen[fe.Field()] = true
		verr.Add(fe.Field(), message(fe))
	}
	return true
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeMessage(typeErr)
	}
	return "valor inválido"
}

func typeMessage(e *json.UnmarshalTypeError) string {
	switch e.Type.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "deve ser um inteiro positivo"
	case reflect.Bool:
		return "deve ser true ou false"
	case reflect.String:
		return "deve ser um texto"
	}
	return fmt.Sprintf("tipo inválido: %s", e.Value)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "min":
		return fmt.Sprintf("deve ter no mínimo %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
	case "gt", "positive_int":
		return "deve ser um inteiro positivo"
	case "email":
		return "e-mail inválido"
	case "oneof":
		return fmt.Sprintf("deve ser um de: %s", fe.Param())
	case "specialty":
		return "especialidade inválida"
	case "insurance":
		return "convênio inválido"
	case "appointment_status":
		return "deve ser um de: " + strings.Join(statusNames(), ", ")
	case "iso8601":
		return "deve ser uma data ISO-8601 com horário"
	case "iso8601date":
		return "deve ser uma data ISO-8601"
	}
	return "valor inválido"
}
