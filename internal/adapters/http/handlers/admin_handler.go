package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"loanguard/internal/adapters/persistence/models"
	"loanguard/internal/core/domain"
	"loanguard/internal/core/services"
	"loanguard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles the admin-protected loan record endpoints
type AdminHandler struct {
	loanService *services.LoanService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(loanService *services.LoanService) *AdminHandler {
	return &AdminHandler{loanService: loanService}
}

// ListRecords returns all loan records
// @Summary List loan records
// @Description Returns all loan records in the database
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LoanRequest
// @Failure 401 {object} response.Response
// @Router /admin/ [get]
func (h *AdminHandler) ListRecords(c *fiber.Ctx) error {
	records, err := h.loanService.ListRecords(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list loan records")
	}
	return c.JSON(records)
}

// UpdateRecord partially updates a loan record
// @Summary Update loan record
// @Description Updates the loan record with the given id using the non-null body fields
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id_ query int true "Loan record id"
// @Param body body models.LoanRequestPatch true "Fields to change"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/ [patch]
func (h *AdminHandler) UpdateRecord(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return response.BadRequest(c, "Query parameter id_ is required")
	}

	var patch models.LoanRequestPatch
	if err := c.BodyParser(&patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.loanService.UpdateRecord(c.Context(), id, &patch); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		// Missing ids answer 400 to stay wire-compatible with the
		// legacy service, even though 404 would be the natural pick.
		case errors.Is(err, domain.ErrRecordNotFound):
			return response.BadRequest(c, fmt.Sprintf("There is no record with id=%d.", id))
		default:
			return response.InternalServerError(c, "Failed to update loan record")
		}
	}

	return response.Success(c, fmt.Sprintf("Loan record with id=%d has been updated", id), nil)
}

// DeleteRecord deletes a loan record
// @Summary Delete loan record
// @Description Deletes the loan record with the given id
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id_ query int true "Loan record id"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /admin/ [delete]
func (h *AdminHandler) DeleteRecord(c *fiber.Ctx) error {
	id, err := parseRecordID(c)
	if err != nil {
		return response.BadRequest(c, "Query parameter id_ is required")
	}

	if err := h.loanService.DeleteRecord(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return response.BadRequest(c, fmt.Sprintf("There is no record with id=%d.", id))
		}
		return response.InternalServerError(c, "Failed to delete loan record")
	}

	return response.Success(c, fmt.Sprintf("Loan record with id=%d has been deleted", id), nil)
}

// parseRecordID reads the id_ query parameter
func parseRecordID(c *fiber.Ctx) (uint, error) {
	raw := c.Query("id_")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
