package deck

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/efcquiz/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their json name so errors match the CLI flags.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// toValidationError converts validator errors into a domain.ValidationError.
func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return "max " + fe.Param() + " characters"
	case "gte":
		return "must be >= " + fe.Param()
	case "lte":
		return "max " + fe.Param()
	}
	return fmt.Sprintf("failed %q check", fe.Tag())
}

// ImportInput holds the parameters for importing a deck.
type ImportInput struct {
	Name    string    `json:"name"    validate:"required"`
	Content io.Reader `json:"content" validate:"required"`
	// Replace overwrites the content of an existing deck with the same name.
	Replace bool `json:"replace"`
	// Strict rejects sets with cards that can never produce a question.
	Strict bool `json:"strict"`
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return toValidationError(err)
	}
	if domain.NormalizeDeckName(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}

// ListInput holds the parameters for listing decks.
type ListInput struct {
	NamePrefix string `json:"prefix" validate:"max=200"`
	Limit      int    `json:"limit"  validate:"gte=0,lte=500"`
	Offset     int    `json:"offset" validate:"gte=0"`
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if err := validate.Struct(i); err != nil {
		return toValidationError(err)
	}
	return nil
}

// DeleteInput holds the parameters for deleting a deck.
type DeleteInput struct {
	DeckID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteInput) Validate() error {
	if i.DeckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}
	return nil
}
