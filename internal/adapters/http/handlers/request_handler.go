package handlers

import (
	"errors"

	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/core/services"
	"bloodbridge/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RequestHandler handles blood request registry endpoints
type RequestHandler struct {
	requestService *services.RequestService
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestService *services.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

// Create handles public blood request submission
// @Summary Submit blood request
// @Description Submit a new blood request from the public form
// @Tags Requests
// @Accept json
// @Produce json
// @Param body body models.BloodRequest true "Request fields"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *fiber.Ctx) error {
	var request models.BloodRequest
	if err := c.BodyParser(&request); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if request.PatientName == "" {
		return response.BadRequest(c, "Patient name is required")
	}
	if request.ContactName == "" {
		return response.BadRequest(c, "Contact name is required")
	}
	if request.Email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if request.Phone == "" {
		return response.BadRequest(c, "Phone is required")
	}
	if request.BloodType == "" {
		return response.BadRequest(c, "Blood type is required")
	}

	if err := h.requestService.Create(c.Context(), &request); err != nil {
		return response.BadRequest(c, "Error: "+err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Request added successfully",
		"request": request,
	})
}

// UpdateStatusRequest represents status update request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus overwrites a request's status
// @Summary Update request status
// @Description Overwrite the status of a blood request
// @Tags Requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param body body UpdateStatusRequest true "New status"
// @Success 200 {object} models.BloodRequest
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /requests/{id} [put]
func (h *RequestHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request id")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Status == "" {
		return response.BadRequest(c, "Status is required")
	}

	request, err := h.requestService.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrRequestNotFound) {
			return response.NotFound(c, "Request not found")
		}
		return response.InternalServerError(c, "Error updating request", err)
	}

	return c.JSON(request)
}
