package handlers

import (
	"errors"
	"strconv"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DonorHandler handles donor registry endpoints
type DonorHandler struct {
	donorService *services.DonorService
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(donorService *services.DonorService) *DonorHandler {
	return &DonorHandler{donorService: donorService}
}

// Create handles public donor registration
// @Summary Register donor
// @Description Register a new donor from the public form
// @Tags Donors
// @Accept json
// @Produce json
// @Param body body models.Donor true "Donor fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /donors [post]
func (h *DonorHandler) Create(c *fiber.Ctx) error {
	var donor models.Donor
	if err := c.BodyParser(&donor); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	// Required fields only; everything else is stored as submitted
	if donor.Name == "" {
		return response.BadRequest(c, "Name is required")
	}
	if donor.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if donor.Phone == "" {
		return response.BadRequest(c, "Phone is required")
	}
	if donor.BloodType == "" {
		return response.BadRequest(c, "Blood type is required")
	}

	if err := h.donorService.Create(c.Context(), &donor); err != nil {
		return response.BadRequest(c, "Error: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Donor added successfully",
		"donor":   donor,
	})
}

// ListActive handles public listing of active donors
// @Summary List active donors
// @Description List all donors that have not donated yet
// @Tags Donors
// @Produce json
// @Success 200 {array} models.Donor
// @Failure 400 {object} response.Response
// @Router /donors [get]
func (h *DonorHandler) ListActive(c *fiber.Ctx) error {
	donors, err := h.donorService.ListActive(c.Context())
	if err != nil {
		return response.BadRequest(c, "Error: "+err.Error())
	}

	return c.JSON(donors)
}

// MarkDonated flags a donor as donated
// @Summary Mark donor as donated
// @Description Move a donor to the donated pool and stamp the donation time
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donor ID"
// @Success 200 {object} models.Donor
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /donors/{id}/donate [put]
func (h *DonorHandler) MarkDonated(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donor id")
	}

	donor, err := h.donorService.MarkDonated(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			return response.NotFound(c, "Donor not found")
		}
		return response.InternalServerError(c, "Error updating donor", err)
	}

	return c.JSON(donor)
}

// Reactivate returns an eligible donor to the active pool
// @Summary Reactivate donor
// @Description Reactivate a donated donor once two calendar months have passed
// @Tags Donors
// @Produce json
// @Security BearerAuth
// @Param id path int true "Donor ID"
// @Success 200 {object} models.Donor
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /donors/{id}/activate [put]
func (h *DonorHandler) Reactivate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid donor id")
	}

	donor, err := h.donorService.Reactivate(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDonorNotFound):
			return response.NotFound(c, "Donor not found")
		case errors.Is(err, services.ErrDonorNotEligible):
			return response.BadRequest(c, "Donor is not eligible to donate yet")
		default:
			return response.InternalServerError(c, "Error updating donor", err)
		}
	}

	return c.JSON(donor)
}

// parseID parses the :id path parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
