package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/HarvestCodex_Go/internal/domain"
	"github.com/osse101/HarvestCodex_Go/internal/simulator"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validate     *Validator
	validateOnce sync.Once
)

// Custom validation tags. Each accepts the empty string so optional fields
// can combine them with omitempty or required.
const (
	TagGame             = "game"
	TagCategory         = "category"
	TagCompletionFilter = "completion_filter"
	TagSeason           = "season"
	TagBiome            = "biome"
	TagProcessor        = "processor"
	TagQuality          = "quality"
	TagLang             = "lang"
)

// InitValidator builds the shared validator with the domain enum tags
func InitValidator() {
	v := validator.New()

	// Report json names so field errors match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})

	enums := map[string]func(string) bool{
		TagGame:             func(s string) bool { return domain.Game(s).IsValid() },
		TagCategory:         func(s string) bool { return domain.Category(s).IsValid() },
		TagCompletionFilter: func(s string) bool { return domain.CompletionFilter(s).IsValid() },
		TagSeason:           func(s string) bool { return simulator.Season(s).IsValid() },
		TagBiome:            func(s string) bool { return simulator.Biome(s).IsValid() },
		TagProcessor:        func(s string) bool { return simulator.Processor(s).IsValid() },
		TagQuality:          func(s string) bool { return simulator.QualityTier(s).IsValid() },
		TagLang:             func(s string) bool { return s == domain.LangEnglish || s == domain.LangPortuguese },
	}
	for tag, valid := range enums {
		_ = v.RegisterValidation(tag, enumValidation(valid))
	}

	validate = &Validator{validate: v}
}

func enumValidation(valid func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || valid(s)
	}
}

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	validateOnce.Do(func() {
		if validate == nil {
			InitValidator()
		}
	})
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validation errors into a field -> message map
// without leaking Go struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgInvalidRequestFormat
		return errs
	}

	for _, e := range validationErrors {
		field := e.Field()
		numeric := isNumericKind(e.Kind())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "min", "gte":
			if numeric {
				errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
			} else {
				errs[field] = fmt.Sprintf("Must contain at least %s", e.Param())
			}
		case "max", "lte":
			if numeric {
				errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
			} else {
				errs[field] = fmt.Sprintf("Must contain at most %s", e.Param())
			}
		case "gt":
			errs[field] = fmt.Sprintf("Must be greater than %s", e.Param())
		case TagGame:
			errs[field] = "Invalid game"
		case TagCategory:
			errs[field] = "Invalid category"
		case TagCompletionFilter:
			errs[field] = "Must be all, completed or incomplete"
		case TagSeason:
			errs[field] = "Invalid season"
		case TagBiome:
			errs[field] = "Invalid biome"
		case TagProcessor:
			errs[field] = "Invalid processor"
		case TagQuality:
			errs[field] = "Invalid quality tier"
		case TagLang:
			errs[field] = "Unsupported language"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
