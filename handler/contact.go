package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
	"github.com/ooda-AI-GB/gb-gdev-legal/service"
)

type ContactHandler struct {
	contacts *service.ContactService
}

func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

type ContactCreateRequest struct {
	Name       string   `json:"name" binding:"required"`
	Role       string   `json:"role" binding:"required"`
	Firm       *string  `json:"firm"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Specialty  *string  `json:"specialty"`
	HourlyRate *float64 `json:"hourly_rate"`
	Notes      *string  `json:"notes"`
}

type ContactUpdateRequest struct {
	Name       *string  `json:"name"`
	Role       *string  `json:"role"`
	Firm       *string  `json:"firm"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Specialty  *string  `json:"specialty"`
	HourlyRate *float64 `json:"hourly_rate"`
	Notes      *string  `json:"notes"`
}

func (r *ContactUpdateRequest) fields() (map[string]any, error) {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Role != nil {
		role, err := model.ParseContactRole(*r.Role)
		if err != nil {
			return nil, err
		}
		updates["role"] = role
	}
	if r.Firm != nil {
		updates["firm"] = *r.Firm
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Specialty != nil {
		updates["specialty"] = *r.Specialty
	}
	if r.HourlyRate != nil {
		updates["hourly_rate"] = *r.HourlyRate
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	return updates, nil
}

func (h *ContactHandler) List(c *gin.Context) {
	var filter service.ContactFilter

	if raw := c.Query("role"); raw != "" {
		role, err := model.ParseContactRole(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.Role = &role
	}
	if raw := c.Query("specialty"); raw != "" {
		filter.Specialty = &raw
	}

	contacts, err := h.contacts.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	role, err := model.ParseContactRole(req.Role)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	contact := &model.LegalContact{
		Name:       req.Name,
		Role:       role,
		Firm:       req.Firm,
		Email:      req.Email,
		Phone:      req.Phone,
		Specialty:  req.Specialty,
		HourlyRate: req.HourlyRate,
		Notes:      req.Notes,
	}
	if err := h.contacts.Create(contact); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

func (h *ContactHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contact, err := h.contacts.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ContactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	updates, err := req.fields()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contacts.Update(id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contacts.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
