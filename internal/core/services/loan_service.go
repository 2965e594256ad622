package services

import (
	"context"
	"log"

	"loanguard/internal/adapters/persistence/models"
	"loanguard/internal/adapters/persistence/repositories"
	"loanguard/internal/adapters/scoring"
	"loanguard/internal/core/domain"
)

// LoanService handles the loan-check flow and record administration
type LoanService struct {
	loanRepo      repositories.LoanRepository
	scoringClient scoring.Client
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo repositories.LoanRepository, scoringClient scoring.Client) *LoanService {
	return &LoanService{
		loanRepo:      loanRepo,
		scoringClient: scoringClient,
	}
}

// CheckLoan asks the scoring provider for a decision on the applicant and
// persists the resulting record. Each step depends on the previous one
// succeeding; a scoring failure is surfaced immediately, never retried.
func (s *LoanService) CheckLoan(ctx context.Context, person *domain.Person) (string, error) {
	result, err := s.scoringClient.PreScore(ctx, person.DNI)
	if err != nil {
		return "", err
	}
	if result.HasError {
		return "", domain.ErrApplicantData
	}

	record := &models.LoanRequest{
		DNI:        person.DNI,
		FullName:   person.FullName,
		Genre:      string(person.Genre),
		Email:      person.Email,
		LoanAmount: person.LoanAmount,
		Status:     result.Status,
	}
	if err := s.loanRepo.Create(ctx, record); err != nil {
		return "", err
	}

	log.Printf("Loan decision recorded: dni=%d status=%s", person.DNI, result.Status)
	return result.Status, nil
}

// ListRecords returns all stored loan records
func (s *LoanService) ListRecords(ctx context.Context) ([]*models.LoanRequest, error) {
	return s.loanRepo.List(ctx)
}

// UpdateRecord applies the non-nil patch fields to the record with the
// given id. Patch values obey the same field invariants as a new
// applicant; an unknown id yields ErrRecordNotFound.
func (s *LoanService) UpdateRecord(ctx context.Context, id uint, patch *models.LoanRequestPatch) error {
	if err := validatePatch(patch); err != nil {
		return err
	}

	affected, err := s.loanRepo.UpdatePartial(ctx, id, patch.Fields())
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// validatePatch checks every provided patch field against the applicant
// field invariants. Status and loan amount are free-form.
func validatePatch(patch *models.LoanRequestPatch) error {
	if patch.DNI != nil {
		if _, err := domain.ParseDNI(*patch.DNI); err != nil {
			return err
		}
	}
	if patch.FullName != nil {
		if _, err := domain.ParseFullName(*patch.FullName); err != nil {
			return err
		}
	}
	if patch.Genre != nil {
		if _, err := domain.ParseSex(*patch.Genre); err != nil {
			return err
		}
	}
	if patch.Email != nil {
		if _, err := domain.ParseEmail(*patch.Email); err != nil {
			return err
		}
	}
	return nil
}

// DeleteRecord deletes the record with the given id. An unknown id
// yields ErrRecordNotFound.
func (s *LoanService) DeleteRecord(ctx context.Context, id uint) error {
	affected, err := s.loanRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}
