package order

import (
	"foodorder/internal/pkg/errs"
)

// EmailSource records which email address notification delivery uses.
// The fallback from contact email to the account email is explicit, never
// inferred silently.
type EmailSource int

const (
	// UnknownEmailSource represents an undefined source.
	UnknownEmailSource EmailSource = iota

	// EmailFromContact means the contact block carried its own email.
	EmailFromContact

	// EmailFromAccount means the order fell back to the account email.
	EmailFromAccount
)

// String returns the persisted name of the email source.
func (s EmailSource) String() string {
	switch s {
	case EmailFromContact:
		return "contact_info"
	case EmailFromAccount:
		return "user_account"
	default:
		return "unknown"
	}
}

// EmailSourceFromString parses a persisted email source value.
func EmailSourceFromString(v string) (EmailSource, error) {
	switch v {
	case "contact_info":
		return EmailFromContact, nil
	case "user_account":
		return EmailFromAccount, nil
	default:
		return UnknownEmailSource, errs.NewValueIsInvalidError("emailSource")
	}
}

// ErrContactInfoIsNotConstructed indicates a ContactInfo that bypassed
// NewContactInfo.
var ErrContactInfoIsNotConstructed = errs.NewValueIsRequiredError(
	"contact info must be created via NewContactInfo constructor")

// ContactInfo holds who to reach about the order. Name and phone are
// required. Email may be empty here; the aggregate then requires the
// account email instead and records which one it used.
type ContactInfo struct {
	firstName     string
	lastName      string
	email         string
	phone         string
	isConstructed bool
}

// NewContactInfo creates validated contact details.
func NewContactInfo(firstName, lastName, email, phone string) (ContactInfo, error) {
	if firstName == "" {
		return ContactInfo{}, errs.NewValueIsRequiredError("contactInfo.firstName")
	}
	if lastName == "" {
		return ContactInfo{}, errs.NewValueIsRequiredError("contactInfo.lastName")
	}
	if phone == "" {
		return ContactInfo{}, errs.NewValueIsRequiredError("contactInfo.phone")
	}
	return ContactInfo{
		firstName:     firstName,
		lastName:      lastName,
		email:         email,
		phone:         phone,
		isConstructed: true,
	}, nil
}

// FirstName returns the contact first name.
func (c ContactInfo) FirstName() string { return c.firstName }

// LastName returns the contact last name.
func (c ContactInfo) LastName() string { return c.lastName }

// Email returns the contact email, possibly empty.
func (c ContactInfo) Email() string { return c.email }

// Phone returns the contact phone number.
func (c ContactInfo) Phone() string { return c.phone }

// Validate ensures the contact info was created via NewContactInfo.
func (c ContactInfo) Validate() error {
	if !c.isConstructed {
		return ErrContactInfoIsNotConstructed
	}
	return nil
}
