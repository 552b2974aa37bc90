// Package client provides the Client catalog: registered buyers keyed by identifier.
package client

import (
	"context"
	"regexp"
	"strings"
	"time"

	"pharmacy/internal/core/apperror"
	"pharmacy/internal/core/entity"
)

// BirthDateLayout is the input/output layout for birth dates.
const BirthDateLayout = "2006-01-02"

var digitsOnlyRE = regexp.MustCompile(`^\d+$`)

// Client represents a registered buyer.
type Client struct {
	entity.Catalog

	// ClientID is the unique identifier (CPF digits, no punctuation)
	ClientID string `json:"clientId"`

	// BirthDate drives age-based discount eligibility
	BirthDate time.Time `json:"birthDate"`
}

// NewClient creates a new Client with required fields.
func NewClient(clientID, name string, birthDate time.Time) *Client {
	return &Client{
		Catalog:   entity.NewCatalog(name),
		ClientID:  strings.TrimSpace(clientID),
		BirthDate: birthDate,
	}
}

// ParseBirthDate parses a YYYY-MM-DD birth date.
func ParseBirthDate(s string) (time.Time, error) {
	d, err := time.Parse(BirthDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, apperror.NewInvalidInput("birth date must use the YYYY-MM-DD format").
			WithDetail("value", s).
			WithCause(err)
	}
	return d, nil
}

// CatalogKey implements domain.CatalogEntity.
func (c *Client) CatalogKey() string {
	return c.ClientID
}

// Validate implements entity.Validatable interface.
func (c *Client) Validate(ctx context.Context) error {
	if c.ClientID == "" {
		return apperror.NewValidation("client identifier is required").
			WithDetail("field", "clientId")
	}
	if !digitsOnlyRE.MatchString(c.ClientID) {
		return apperror.NewValidation("client identifier must contain digits only").
			WithDetail("field", "clientId").
			WithDetail("value", c.ClientID)
	}
	if err := c.Catalog.Validate(ctx); err != nil {
		return err
	}
	if c.BirthDate.IsZero() {
		return apperror.NewValidation("birth date is required").
			WithDetail("field", "birthDate")
	}
	if c.BirthDate.After(time.Now()) {
		return apperror.NewValidation("birth date cannot be in the future").
			WithDetail("field", "birthDate")
	}
	return nil
}

// Age returns the age in whole years as of asOf.
// The year difference is reduced by one until the birthday has passed.
func (c *Client) Age(asOf time.Time) int {
	years := asOf.Year() - c.BirthDate.Year()
	if asOf.Month() < c.BirthDate.Month() ||
		(asOf.Month() == c.BirthDate.Month() && asOf.Day() < c.BirthDate.Day()) {
		years--
	}
	return years
}
