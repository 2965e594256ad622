package domain

import (
	"fmt"
	"net/mail"
	"regexp"
)

// DNI bounds: a national identity number must be strictly between one
// million and one hundred million.
const (
	DNIMin = 1_000_000
	DNIMax = 100_000_000
)

var fullNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// Sex is the applicant sex as the scoring provider expects it
type Sex string

const (
	SexMale   Sex = "masculino"
	SexFemale Sex = "femenino"
)

// ParseDNI validates a national identity number
func ParseDNI(value int64) (int64, error) {
	if value <= DNIMin || value >= DNIMax {
		return 0, fmt.Errorf("%w: dni %d out of range", ErrInvalidInput, value)
	}
	return value, nil
}

// ParseFullName validates that a full name contains only alphabetic
// characters and whitespace.
func ParseFullName(value string) (string, error) {
	if !fullNameRe.MatchString(value) {
		return "", fmt.Errorf("%w: full name only can have alphabetic characters", ErrInvalidInput)
	}
	return value, nil
}

// ParseSex validates the sex enum
func ParseSex(value string) (Sex, error) {
	switch Sex(value) {
	case SexMale, SexFemale:
		return Sex(value), nil
	}
	return "", fmt.Errorf("%w: genre must be %q or %q", ErrInvalidInput, SexMale, SexFemale)
}

// ParseEmail validates email syntax
func ParseEmail(value string) (string, error) {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return "", fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	return value, nil
}

// Person is a validated loan applicant. Construct with NewPerson so the
// field invariants always hold.
type Person struct {
	DNI        int64
	FullName   string
	Genre      Sex
	Email      string
	LoanAmount float64
}

// NewPerson validates every applicant field and returns a Person only
// when all of them pass. Validation happens before any side effect.
func NewPerson(dni int64, fullName, genre, email string, loanAmount float64) (*Person, error) {
	validDNI, err := ParseDNI(dni)
	if err != nil {
		return nil, err
	}
	validName, err := ParseFullName(fullName)
	if err != nil {
		return nil, err
	}
	validSex, err := ParseSex(genre)
	if err != nil {
		return nil, err
	}
	validEmail, err := ParseEmail(email)
	if err != nil {
		return nil, err
	}

	return &Person{
		DNI:        validDNI,
		FullName:   validName,
		Genre:      validSex,
		Email:      validEmail,
		LoanAmount: loanAmount,
	}, nil
}
