package domain

import "errors"

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
)

// Admin errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Loan errors
var (
	ErrRecordNotFound     = errors.New("loan record not found")
	ErrScoringUnavailable = errors.New("scoring provider unavailable")
	ErrApplicantData      = errors.New("applicant data rejected by scoring provider")
)
