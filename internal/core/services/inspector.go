package services

import (
	"github.com/meridianhq/localsync/internal/core/domain"
	"github.com/meridianhq/localsync/internal/core/ports/driving"
)

// Ensure Inspection implements the interface.
var _ driving.Inspector = (*Inspection)(nil)

// Inspection exposes the read-only discovery operations backing the
// validate and locales commands. It never touches the CMS.
type Inspection struct {
	scanner   *Scanner
	validator *Validator
	registry  []domain.ContentType
}

// NewInspection creates an inspection service.
func NewInspection(scanner *Scanner, validator *Validator, registry []domain.ContentType) *Inspection {
	return &Inspection{scanner: scanner, validator: validator, registry: registry}
}

// ValidateAll scans and validates every content type, returning all
// diagnostics found.
func (i *Inspection) ValidateAll() ([]domain.ValidationError, error) {
	var all []domain.ValidationError
	for _, ct := range i.registry {
		files, err := i.scanner.Scan(ct)
		if err != nil {
			return nil, err
		}
		_, invalid := i.validator.Partition(ct, files)
		all = append(all, invalid...)
	}
	return all, nil
}

// LocalesPresent returns every locale observed on disk across all
// content types, base codes only, including the default locale.
func (i *Inspection) LocalesPresent() []string {
	return i.scanner.LocalesPresent(i.registry)
}
