package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/polifund_ledger/internal/core/ports/services"
	"github.com/SscSPs/polifund_ledger/internal/dto"
	"github.com/SscSPs/polifund_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func registerContactRoutes(rg *gin.RouterGroup, contactService portssvc.ContactSvcFacade) {
	h := &contactHandler{contactService: contactService}

	contacts := rg.Group("/contacts")
	{
		contacts.POST("", h.createContact)
		contacts.GET("", h.listContacts)
		contacts.GET("/:contactID", h.getContact)
		contacts.PUT("/:contactID", h.updateContact)
		contacts.DELETE("/:contactID", h.deleteContact)
	}
}

func (h *contactHandler) createContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createContact", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	contact, err := h.contactService.CreateContact(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "create contact")
		return
	}
	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

func (h *contactHandler) listContacts(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	contacts, err := h.contactService.ListContacts(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err, "list contacts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"contacts": dto.ToContactResponses(contacts)})
}

func (h *contactHandler) getContact(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	contact, err := h.contactService.GetContact(c.Request.Context(), actor, c.Param("contactID"))
	if err != nil {
		respondError(c, err, "retrieve contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *contactHandler) updateContact(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateContact", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), actor, c.Param("contactID"), req)
	if err != nil {
		respondError(c, err, "update contact")
		return
	}
	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *contactHandler) deleteContact(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(c.Request.Context(), actor, c.Param("contactID")); err != nil {
		respondError(c, err, "delete contact")
		return
	}
	c.Status(http.StatusNoContent)
}
