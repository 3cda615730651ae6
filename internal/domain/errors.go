package domain

import (
	"errors"
	"fmt"
	"sort"
)

const MsgAllFieldsRequired = "All fields required"

type ValidationError struct {
	Fields []string
	Msg    string
}

func (e ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("missing required fields: %v", e.Fields)
	}
	return "validation error"
}

type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// RequireFields returns a ValidationError naming every empty value in fields.
// Presence is the only rule: whitespace counts as present.
func RequireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return ValidationError{Fields: missing, Msg: MsgAllFieldsRequired}
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}
