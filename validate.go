package swc

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var validate *validator.Validate
var translator ut.Translator

func init() {
	validate = validator.New()
	var ok bool
	translator, ok = ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("swc: failed to get 'en' translator")
	}

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// wireRecord is implemented by the unexported wire structs: it converts an
// already validated payload into its public record.
type wireRecord[T any] interface {
	toRecord() T
}

// parseOne decodes and validates a single JSON object into a record.
func parseOne[W wireRecord[T], T any](model string, data []byte) (T, error) {
	var zero T

	var w W
	if err := json.Unmarshal(data, &w); err != nil {
		return zero, decodeError(model, err)
	}

	if err := checkStruct(model, "", w); err != nil {
		return zero, err
	}

	return w.toRecord(), nil
}

// parseMany decodes and validates a JSON array of objects. One invalid
// element fails the whole sequence.
func parseMany[W wireRecord[T], T any](model string, data []byte) ([]T, error) {
	var ws []W
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, decodeError(model, err)
	}

	if ws == nil {
		return nil, &ValidationError{Model: model, Expected: "array", Message: "payload must be a JSON array"}
	}

	records := make([]T, 0, len(ws))
	for i, w := range ws {
		if err := checkStruct(model, indexPrefix(i), w); err != nil {
			return nil, err
		}
		records = append(records, w.toRecord())
	}

	return records, nil
}

func checkStruct(model, prefix string, w any) error {
	err := validate.Struct(w)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Model: model, Field: strings.TrimSuffix(prefix, "."), Message: err.Error()}
	}

	fe := verrs[0]
	return &ValidationError{
		Model:    model,
		Field:    prefix + fieldPath(fe.Namespace()),
		Expected: jsonKind(fe.Type()),
		Message:  fe.Translate(translator),
	}
}

func decodeError(model string, err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &ValidationError{
			Model:    model,
			Field:    typeErr.Field,
			Expected: jsonKind(typeErr.Type),
			Message:  "cannot use " + typeErr.Value + " as " + jsonKind(typeErr.Type),
		}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ValidationError{Model: model, Expected: "object", Message: "malformed JSON: " + syntaxErr.Error()}
	}

	return &ValidationError{Model: model, Message: err.Error()}
}

// fieldPath drops the wire struct name from a validator namespace,
// "leagueWire.teams[0].team_id" becoming "teams[0].team_id".
func fieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func indexPrefix(i int) string {
	return "[" + strconv.Itoa(i) + "]."
}

var (
	timeType   = reflect.TypeOf(time.Time{})
	jsonTsType = reflect.TypeOf(jsonTime{})
)

// jsonKind names the JSON type a Go field decodes from.
func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch {
	case t == timeType || t == jsonTsType:
		return "timestamp"
	case t == reflect.TypeOf(weekLabel("")):
		return "string or number"
	}

	switch t.Kind() {
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	default:
		return t.String()
	}
}
