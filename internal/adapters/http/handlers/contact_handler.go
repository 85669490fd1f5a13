package handlers

import (
	"errors"

	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ContactHandler handles the contact-donor endpoint
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactDonorRequest represents contact-donor request body
type ContactDonorRequest struct {
	DonorID uint   `json:"donorId"`
	Message string `json:"message"`
}

// ContactDonor records a message for a donor
// @Summary Contact donor
// @Description Record a message for a donor (logged only, no dispatch)
// @Tags Donors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ContactDonorRequest true "Donor id and message"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contact-donor [post]
func (h *ContactHandler) ContactDonor(c *fiber.Ctx) error {
	var req ContactDonorRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.DonorID == 0 {
		return response.BadRequest(c, "Donor id is required")
	}
	if req.Message == "" {
		return response.BadRequest(c, "Message is required")
	}

	reference, err := h.contactService.ContactDonor(c.Context(), req.DonorID, req.Message)
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			return response.NotFound(c, "Donor not found")
		}
		return response.BadRequest(c, "Error: "+err.Error())
	}

	return c.JSON(fiber.Map{
		"message":   "Message sent successfully",
		"reference": reference,
	})
}
