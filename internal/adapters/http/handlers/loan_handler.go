package handlers

import (
	"errors"

	"loanguard/internal/core/domain"
	"loanguard/internal/core/services"
	"loanguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles the public loan-check endpoint
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// CheckLoanRequest represents a loan applicant payload
type CheckLoanRequest struct {
	DNI        int64   `json:"dni"`
	FullName   string  `json:"full_name"`
	Genre      string  `json:"genre"`
	Email      string  `json:"email"`
	LoanAmount float64 `json:"loan_amount"`
}

// CheckLoanResponse carries the provider's decision
type CheckLoanResponse struct {
	LoanStatus string `json:"loan_status"`
}

// CheckLoan verifies loan access for an applicant
// @Summary Verify loan access
// @Description Validates the applicant data, asks the scoring provider for a decision and records it
// @Tags Loan
// @Accept json
// @Produce json
// @Param body body CheckLoanRequest true "Applicant data"
// @Success 200 {object} CheckLoanResponse
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Failure 502 {object} response.Response
// @Router /check-loan/ [post]
func (h *LoanHandler) CheckLoan(c *fiber.Ctx) error {
	var req CheckLoanRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Field validation happens before the scoring call; a bad payload
	// never reaches the provider.
	person, err := domain.NewPerson(req.DNI, req.FullName, req.Genre, req.Email, req.LoanAmount)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	status, err := h.loanService.CheckLoan(c.Context(), person)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrApplicantData):
			return response.BadRequest(c, "Please verify the data entered.")
		case errors.Is(err, domain.ErrScoringUnavailable):
			return response.BadGateway(c, "Scoring provider unavailable")
		default:
			return response.InternalServerError(c, "Failed to check loan access")
		}
	}

	return c.JSON(CheckLoanResponse{LoanStatus: status})
}
