// Package bind provides query-string bind and validation helpers for handlers
package bind

import (
	"errors"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"

	perr "joblens/internal/platform/errors"
	"joblens/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// FieldLevel aliases validator.FieldLevel
type FieldLevel = validator.FieldLevel

// UT aliases ut.Translator
type UT = ut.Translator

// FieldError aliases validator.FieldError
type FieldError = validator.FieldError

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and query tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer query tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("query")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		// short messages for min and max
		registerShortMin(v, trans)
		registerShortMax(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// RegisterValidation registers a custom tag
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// ParseQuery decodes the request query string into T via `query` struct tags,
// validates it, and maps failures to project errors.
//
// Supported field kinds: string, int, *int, *int64, bool, []string,
// plus embedded structs of the same.
// Booleans are true iff the raw value is "true" or "1".
// Repeated params and comma-separated values both populate []string fields;
// empty entries are dropped.
func ParseQuery[T any](r *http.Request) (T, error) {
	var dst T
	bad, err := decodeValues(r.URL.Query(), &dst)
	if err != nil {
		var zero T
		return zero, err
	}
	if len(bad) > 0 {
		// fields that did decode still get their bounds checked so the
		// response names every invalid param, not just the unparseable ones
		if err := Get().Validator.Struct(dst); err != nil {
			verrs := validator.ValidationErrors{}
			if errors.As(err, &verrs) {
				bad = append(bad, ValidationMessages(err))
			}
		}
		var zero T
		return zero, perr.Validationf("%s", strings.Join(bad, "; "))
	}

	if err := Get().Validator.Struct(dst); err != nil {
		var zero T
		inv := &validator.InvalidValidationError{}
		if errors.As(err, &inv) {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.Validationf("validation error")
		}
		return zero, perr.Newf(perr.ErrorCodeValidation, "%s", ValidationMessages(err))
	}

	return dst, nil
}

// decodeValues copies query params onto dst's tagged fields.
// Per-field decode failures are collected, not returned on first hit, so the
// response can name every bad param at once. The error return is reserved for
// unsupported field kinds, which are programmer mistakes
func decodeValues(values url.Values, dst any) ([]string, error) {
	rv := reflect.ValueOf(dst).Elem()
	rt := rv.Type()

	var bad []string
	for i := 0; i < rt.NumField(); i++ {
		fld := rt.Field(i)
		if fld.Anonymous && fld.Type.Kind() == reflect.Struct {
			nested, err := decodeValues(values, rv.Field(i).Addr().Interface())
			if err != nil {
				return nil, err
			}
			bad = append(bad, nested...)
			continue
		}
		name := fld.Tag.Get("query")
		if name == "" || name == "-" {
			continue
		}
		if idx := strings.Index(name, ","); idx >= 0 {
			name = name[:idx]
		}
		if !values.Has(name) {
			continue
		}
		raw := values.Get(name)
		fv := rv.Field(i)

		switch fv.Kind() {
		case reflect.String:
			fv.SetString(strings.TrimSpace(raw))
		case reflect.Int:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				bad = append(bad, name+" must be an integer")
				continue
			}
			fv.SetInt(int64(n))
		case reflect.Bool:
			v := strings.TrimSpace(raw)
			fv.SetBool(v == "true" || v == "1")
		case reflect.Ptr:
			elem := fv.Type().Elem()
			if elem.Kind() != reflect.Int && elem.Kind() != reflect.Int64 {
				return nil, perr.Internalf("unsupported pointer field %s", fld.Name)
			}
			n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				bad = append(bad, name+" must be an integer")
				continue
			}
			pv := reflect.New(elem)
			pv.Elem().SetInt(n)
			fv.Set(pv)
		case reflect.Slice:
			if fv.Type().Elem().Kind() != reflect.String {
				return nil, perr.Internalf("unsupported slice field %s", fld.Name)
			}
			var out []string
			for _, raw := range values[name] {
				for _, part := range strings.Split(raw, ",") {
					part = strings.TrimSpace(part)
					if part != "" {
						out = append(out, part)
					}
				}
			}
			if out == nil {
				bad = append(bad, name+" must not be empty")
				continue
			}
			fv.Set(reflect.ValueOf(out))
		default:
			return nil, perr.Internalf("unsupported field %s", fld.Name)
		}
	}
	return bad, nil
}

// ValidationMessages joins the translated message of every field error
// so a single response reports all invalid params at once
func ValidationMessages(err error) string {
	if err == nil {
		return ""
	}
	verrs := validator.ValidationErrors{}
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fe.Translate(Get().Translator))
	}
	return strings.Join(msgs, "; ")
}

// ValidationFieldAndMessage returns the first field and translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	verrs := validator.ValidationErrors{}
	if !errors.As(err, &verrs) {
		return "", err.Error()
	}
	for _, fe := range verrs {
		return fe.Field(), fe.Translate(Get().Translator)
	}
	return "", err.Error()
}

// As re-exports errors.As to reduce import noise at call sites
func As(err error, target any) bool { return errors.As(err, target) }

// custom translations with short messages

func registerShortMin(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("min", trans,
		func(ut ut.Translator) error {
			return ut.Add("min", "{0} must be at least {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("min", fe.Field(), fe.Param())
			return msg
		},
	)
}

func registerShortMax(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("max", trans,
		func(ut ut.Translator) error {
			return ut.Add("max", "{0} must be at most {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("max", fe.Field(), fe.Param())
			return msg
		},
	)
}
