package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
	"github.com/ooda-AI-GB/gb-gdev-legal/service"
)

type ComplianceHandler struct {
	items *service.ComplianceService
}

func NewComplianceHandler(items *service.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{items: items}
}

type ComplianceCreateRequest struct {
	Title             string      `json:"title" binding:"required"`
	Description       *string     `json:"description"`
	Category          string      `json:"category" binding:"required"`
	Status            string      `json:"status"`
	DueDate           *model.Date `json:"due_date"`
	ResponsiblePerson *string     `json:"responsible_person"`
	Notes             *string     `json:"notes"`
}

type ComplianceUpdateRequest struct {
	Title             *string     `json:"title"`
	Description       *string     `json:"description"`
	Category          *string     `json:"category"`
	Status            *string     `json:"status"`
	DueDate           *model.Date `json:"due_date"`
	ResponsiblePerson *string     `json:"responsible_person"`
	Notes             *string     `json:"notes"`
}

func (r *ComplianceUpdateRequest) fields() (map[string]any, error) {
	updates := map[string]any{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Category != nil {
		category, err := model.ParseComplianceCategory(*r.Category)
		if err != nil {
			return nil, err
		}
		updates["category"] = category
	}
	if r.Status != nil {
		status, err := model.ParseComplianceStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		updates["status"] = status
	}
	if r.DueDate != nil {
		updates["due_date"] = *r.DueDate
	}
	if r.ResponsiblePerson != nil {
		updates["responsible_person"] = *r.ResponsiblePerson
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	return updates, nil
}

func (h *ComplianceHandler) List(c *gin.Context) {
	var filter service.ComplianceFilter

	if raw := c.Query("status"); raw != "" {
		status, err := model.ParseComplianceStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.Status = &status
	}

	dueWithin, ok := queryInt(c, "due_within")
	if !ok {
		return
	}
	filter.DueWithin = dueWithin

	if raw := c.Query("category"); raw != "" {
		category, err := model.ParseComplianceCategory(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.Category = &category
	}

	items, err := h.items.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ComplianceHandler) Create(c *gin.Context) {
	var req ComplianceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	category, err := model.ParseComplianceCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	status := model.ComplianceStatusPending
	if req.Status != "" {
		if status, err = model.ParseComplianceStatus(req.Status); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}

	item := &model.ComplianceItem{
		Title:             req.Title,
		Description:       req.Description,
		Category:          category,
		Status:            status,
		DueDate:           req.DueDate,
		ResponsiblePerson: req.ResponsiblePerson,
		Notes:             req.Notes,
	}
	if err := h.items.Create(item); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ComplianceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.items.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ComplianceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ComplianceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	updates, err := req.fields()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	item, err := h.items.Update(id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ComplianceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.items.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
