package controller

import (
	"net/http"

	"github.com/ankietdev/api/internal/dto"
	"github.com/ankietdev/api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ContactController struct {
	contactSvc service.ContactService
}

func NewContactController(contactSvc service.ContactService) *ContactController {
	return &ContactController{contactSvc: contactSvc}
}

// SendMessage godoc
// @Summary Send a contact form message to the site mailbox
// @Tags contact
// @Accept json
// @Produce json
// @Param message body dto.ContactRequest true "Sender and message"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Mail delivery failed"
// @Router /contact [post]
func (ctrl *ContactController) SendMessage(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind ContactRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := ctrl.contactSvc.Send(req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "Message sent successfully"})
}
