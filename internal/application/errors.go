package application

import (
	"errors"
	"sort"
	"strings"

	"github.com/oksasatya/go-ddd-auth/internal/domain/entity"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("forbidden")
)

// ValidationError collects every field failure of one use-case call.
// Fields keep the order in which they first failed.
type ValidationError struct {
	fields []string
	errs   map[string][]*entity.DomainError
}

func NewValidationError() *ValidationError {
	return &ValidationError{errs: map[string][]*entity.DomainError{}}
}

// Add records err against field. Errors that are not *entity.DomainError
// are ignored; callers route those as infrastructure failures.
func (v *ValidationError) Add(field string, err error) {
	var de *entity.DomainError
	if !errors.As(err, &de) {
		return
	}
	if _, ok := v.errs[field]; !ok {
		v.fields = append(v.fields, field)
	}
	v.errs[field] = append(v.errs[field], de)
}

func (v *ValidationError) Has(field string) bool {
	return len(v.errs[field]) > 0
}

func (v *ValidationError) Empty() bool { return len(v.fields) == 0 }

func (v *ValidationError) Fields() []string {
	out := make([]string, len(v.fields))
	copy(out, v.fields)
	return out
}

// Errors returns the domain errors recorded for field.
func (v *ValidationError) Errors(field string) []*entity.DomainError {
	return v.errs[field]
}

// Messages is the client-facing field -> messages map.
func (v *ValidationError) Messages() map[string][]string {
	out := make(map[string][]string, len(v.fields))
	for _, f := range v.fields {
		for _, e := range v.errs[f] {
			out[f] = append(out[f], e.Message)
		}
	}
	return out
}

func (v *ValidationError) Codes() map[string][]string {
	out := make(map[string][]string, len(v.fields))
	for _, f := range v.fields {
		for _, e := range v.errs[f] {
			out[f] = append(out[f], e.Code)
		}
	}
	return out
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		codes := make([]string, 0, len(v.errs[f]))
		for _, e := range v.errs[f] {
			codes = append(codes, e.Code)
		}
		sort.Strings(codes)
		parts = append(parts, f+": "+strings.Join(codes, ","))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// OrNil returns nil when nothing was recorded, so callers can return it
// directly as an error.
func (v *ValidationError) OrNil() error {
	if v.Empty() {
		return nil
	}
	return v
}

// Is lets errors.Is match any domain error recorded in the aggregate.
func (v *ValidationError) Is(target error) bool {
	de, ok := target.(*entity.DomainError)
	if !ok {
		return false
	}
	for _, f := range v.fields {
		for _, e := range v.errs[f] {
			if e == de {
				return true
			}
		}
	}
	return false
}
