package seeddata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Andre121314115/arcos-globos/internal/core/domain"
)

// Catalog is the full set of records a seed run writes.
type Catalog struct {
	Users     []domain.User     `validate:"required,unique=ID,dive"`
	Templates []domain.Template `validate:"required,unique=ID,dive"`
}

// Load returns the literal catalog after checking it with Validate.
func Load() (Catalog, error) {
	c := Catalog{Users: Users(), Templates: Templates()}
	if err := Validate(c); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate checks required fields, enum membership, price sign and ID
// uniqueness within each record set. Duplicate IDs wrap
// domain.ErrDuplicateID; every other failure wraps domain.ErrInvalidRecord.
func Validate(c Catalog) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(c)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	sentinel := domain.ErrInvalidRecord
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		if fe.Tag() == "unique" {
			sentinel = domain.ErrDuplicateID
		}
		msgs = append(msgs, fieldError(fe))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(msgs, "; "))
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Catalog.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "url":
		return field + " must be a valid url"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "unique":
		return fmt.Sprintf("%s must have unique %s values", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
