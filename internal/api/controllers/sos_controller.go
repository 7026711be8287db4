package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wander/internal/models/request_models"
	"wander/internal/services"
	"wander/pkg/utils"
)

type SOSController struct {
	sosService services.SOSServiceInterface
}

func NewSOSController(sosService services.SOSServiceInterface) *SOSController {
	return &SOSController{
		sosService: sosService,
	}
}

// AddContact godoc
// @Summary Add an emergency contact
// @Tags SOS
// @Accept json
// @Produce json
// @Param request body request_models.CreateContactRequest true "Contact payload"
// @Success 200 {object} response_models.ContactResponse
// @Security BearerAuth
// @Router /sos/contacts [post]
func (s *SOSController) AddContact(c *gin.Context) {
	var req request_models.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Contact name and phone are required")
		return
	}

	accountId := c.GetString("user_id")

	contact, err := s.sosService.AddContact(c.Request.Context(), accountId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contact, "Contact added successfully")
}

// ListContacts godoc
// @Summary List the authenticated account's emergency contacts
// @Tags SOS
// @Produce json
// @Success 200 {array} response_models.ContactResponse
// @Security BearerAuth
// @Router /sos/contacts [get]
func (s *SOSController) ListContacts(c *gin.Context) {
	accountId := c.GetString("user_id")

	contacts, err := s.sosService.ListContacts(c.Request.Context(), accountId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, contacts, "Contacts fetched successfully")
}

// DeleteContact godoc
// @Summary Delete an emergency contact
// @Tags SOS
// @Produce json
// @Param contactId path string true "Contact ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /sos/contacts/{contactId} [delete]
func (s *SOSController) DeleteContact(c *gin.Context) {
	contactId := c.Param("contactId")
	accountId := c.GetString("user_id")

	if err := s.sosService.DeleteContact(c.Request.Context(), contactId, accountId); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Contact deleted successfully")
}

// TriggerSOS godoc
// @Summary Trigger an SOS alert at the given position
// @Description Stores the alert and notifies emergency contacts by email
// @Tags SOS
// @Accept json
// @Produce json
// @Param request body request_models.TriggerSOSRequest true "Position and optional message"
// @Success 200 {object} response_models.SOSAlertResponse
// @Security BearerAuth
// @Router /sos/trigger [post]
func (s *SOSController) TriggerSOS(c *gin.Context) {
	var req request_models.TriggerSOSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid SOS payload")
		return
	}

	accountId := c.GetString("user_id")

	alert, err := s.sosService.TriggerSOS(c.Request.Context(), accountId, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, alert, "SOS alert triggered")
}
