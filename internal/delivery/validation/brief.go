package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"adcraft/internal/domain/campaign"
)

// BriefValidator checks briefs arriving from outside the process. Enumerations
// must hold known values; blank brand and product are left to the generator.
type BriefValidator struct {
	validate *validator.Validate
}

// NewBriefValidator returns a validator that knows the brief enumerations
// and reports fields by their JSON names.
func NewBriefValidator() *BriefValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enums := map[string]func(string) bool{
		"tone":     func(s string) bool { return campaign.Tone(s).Valid() },
		"goal":     func(s string) bool { return campaign.Goal(s).Valid() },
		"ctastyle": func(s string) bool { return campaign.CTAStyle(s).Valid() },
		"channel":  func(s string) bool { return campaign.Channel(s).Valid() },
	}
	for tag, valid := range enums {
		// Registration only fails on an empty tag name.
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return valid(fl.Field().String())
		})
	}

	return &BriefValidator{validate: v}
}

// Validate returns a *campaign.ValidationError for the first failing field
func (bv *BriefValidator) Validate(b campaign.Brief) error {
	err := bv.validate.Struct(b)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := strings.TrimPrefix(fe.Namespace(), "Brief.")
	switch fe.Tag() {
	case "tone", "goal", "ctastyle", "channel":
		return &campaign.ValidationError{Field: field, Reason: fmt.Sprintf("has unknown value %q", fe.Value())}
	case "max":
		return &campaign.ValidationError{Field: field, Reason: "exceeds " + fe.Param()}
	}
	return &campaign.ValidationError{Field: field, Reason: "failed " + fe.Tag()}
}
