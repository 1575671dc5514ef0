package validation

import (
	"context"
	"fmt"
	"slices"

	"addressable/config"
	"addressable/internal/domain/entity"
	domainerrors "addressable/internal/domain/errors"
	"addressable/internal/domain/service"
	"addressable/internal/errors"

	"github.com/go-playground/validator/v10"
)

const countryTag = "country"

var errUnpairedCoordinates = errors.New("unpaired coordinates")

// Validator checks attribute maps against a fixed rule set.
type Validator struct {
	validate *validator.Validate
	rules    map[string]any
	ruleSet  RuleSet
}

// NewValidator registers the country tag against the directory and freezes the rules.
func NewValidator(rules RuleSet, countries service.CountryDirectory) (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	err := validate.RegisterValidation(countryTag, func(fl validator.FieldLevel) bool {
		return countries.IsValid(fl.Field().String())
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register country validation")
	}

	compiled := make(map[string]any, len(rules))
	for field, tags := range rules {
		compiled[field] = tags
	}

	return &Validator{
		validate: validate,
		rules:    compiled,
		ruleSet:  rules.Clone(),
	}, nil
}

// New builds the validator for the configured rules and flags.
func New(cfg *config.Config, flags entity.FlagSet, countries service.CountryDirectory) (*Validator, error) {
	return NewValidator(NewRuleSet(cfg.Addresses, flags), countries)
}

// Rules returns a copy of the active rule set.
func (v *Validator) Rules() RuleSet {
	return v.ruleSet.Clone()
}

// Validate returns nil or a *domainerrors.ValidationError with one message per failing field.
func (v *Validator) Validate(ctx context.Context, attrs map[string]any) error {
	failures := v.validate.ValidateMapCtx(ctx, attrs, v.rules)
	if _, failed := failures[entity.AttrLatitude]; !failed && !coordinatesPaired(attrs) {
		failures[entity.AttrLatitude] = errUnpairedCoordinates
	}
	if len(failures) == 0 {
		return nil
	}

	fields := make([]string, 0, len(failures))
	for field := range failures {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, describe(field, failures[field]))
	}

	return domainerrors.NewValidationError(messages)
}

// coordinatesPaired reports whether latitude and longitude are both given or both absent.
func coordinatesPaired(attrs map[string]any) bool {
	return (attrs[entity.AttrLatitude] == nil) == (attrs[entity.AttrLongitude] == nil)
}

func describe(field string, failure any) string {
	if failure == errUnpairedCoordinates {
		return "The latitude and longitude fields must be present together."
	}

	var fieldErrs validator.ValidationErrors
	err, _ := failure.(error)
	if err == nil || !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Sprintf("The %s field is invalid.", field)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
	case "len":
		return fmt.Sprintf("The %s must be %s characters.", field, fe.Param())
	case "alpha":
		return fmt.Sprintf("The %s may only contain letters.", field)
	case countryTag:
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "latitude", "longitude":
		return fmt.Sprintf("The %s must be a valid %s.", field, fe.Tag())
	case "boolean":
		return fmt.Sprintf("The %s field must be true or false.", field)
	case "numeric":
		return fmt.Sprintf("The %s must be a number.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
