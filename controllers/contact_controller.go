package controllers

import (
	"log"

	"lesnoy/config"
	"lesnoy/dto"
	"lesnoy/errors"
	"lesnoy/models"
	"lesnoy/response"
	"lesnoy/validator"

	"github.com/gin-gonic/gin"
)

func convertToContactResponse(contact models.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:           contact.ID,
		Phone:        contact.Phone,
		Email:        contact.Email,
		Address:      contact.Address,
		Latitude:     contact.Latitude,
		Longitude:    contact.Longitude,
		WorkingHours: contact.WorkingHours,
		Telegram:     contact.Telegram,
		WhatsApp:     contact.WhatsApp,
		UpdatedAt:    contact.UpdatedAt,
	}
}

// GetContact serves the site contact block. When no record exists yet,
// or storage fails, the page renders without contact details.
func GetContact(c *gin.Context) {
	var contact models.Contact
	if err := config.DB.First(&contact).Error; err != nil {
		log.Printf("Contact record unavailable: %v", err)
		response.Success(c, nil)
		return
	}

	response.Success(c, convertToContactResponse(contact))
}

// CreateContact creates the single contact record. A second record is
// refused; use update instead.
func CreateContact(c *gin.Context) {
	var count int64
	if err := config.DB.Model(&models.Contact{}).Count(&count).Error; err != nil {
		response.ServerError(c)
		return
	}
	if count > 0 {
		response.Conflict(c, "Contact record already exists, update it instead")
		return
	}

	var request dto.UpsertContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	contact := models.Contact{
		Phone:        request.Phone,
		Email:        request.Email,
		Address:      request.Address,
		Latitude:     request.Latitude,
		Longitude:    request.Longitude,
		WorkingHours: request.WorkingHours,
		Telegram:     request.Telegram,
		WhatsApp:     request.WhatsApp,
	}
	if err := contact.Validate(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Create(&contact).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Contact record created", convertToContactResponse(contact))
}

// UpdateContact edits the existing contact record in place.
func UpdateContact(c *gin.Context) {
	var contact models.Contact
	if err := config.DB.First(&contact).Error; err != nil {
		response.NotFound(c)
		return
	}

	var request dto.UpsertContactRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	contact.Phone = request.Phone
	contact.Email = request.Email
	contact.Address = request.Address
	contact.Latitude = request.Latitude
	contact.Longitude = request.Longitude
	contact.WorkingHours = request.WorkingHours
	contact.Telegram = request.Telegram
	contact.WhatsApp = request.WhatsApp

	if err := contact.Validate(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := config.DB.Save(&contact).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithMessage(c, "Contact record updated", convertToContactResponse(contact))
}

// DeleteContact always refuses. The site must keep its contact block;
// stale details get edited, never removed.
func DeleteContact(c *gin.Context) {
	response.BadRequest(c, "Contact record cannot be deleted, only updated")
}

// SubmitContactMessage takes a guest feedback form and forwards it to
// staff over the websocket channel. Nothing is stored.
func SubmitContactMessage(c *gin.Context) {
	var request dto.ContactMessageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	if err := validator.ValidateContactMessage(&request); err != nil {
		if appErr := errors.GetAppError(err); appErr != nil {
			response.ValidationError(c, appErr.Message)
			return
		}
		response.BadRequest(c, "Invalid message data")
		return
	}

	notifier.NotifyContactMessage(&request)

	response.SuccessWithMessage(c, "Your message has been sent", nil)
}
