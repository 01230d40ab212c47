package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
	"github.com/ooda-AI-GB/gb-gdev-legal/service"
)

type ClauseHandler struct {
	clauses *service.ClauseService
}

func NewClauseHandler(clauses *service.ClauseService) *ClauseHandler {
	return &ClauseHandler{clauses: clauses}
}

type ClauseCreateRequest struct {
	ContractID int     `json:"contract_id" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	Summary    *string `json:"summary"`
	Text       string  `json:"text" binding:"required"`
	RiskLevel  string  `json:"risk_level"`
	Notes      *string `json:"notes"`
}

type ClauseUpdateRequest struct {
	ContractID *int    `json:"contract_id"`
	Type       *string `json:"type"`
	Summary    *string `json:"summary"`
	Text       *string `json:"text"`
	RiskLevel  *string `json:"risk_level"`
	Notes      *string `json:"notes"`
}

func (r *ClauseUpdateRequest) fields() (map[string]any, error) {
	updates := map[string]any{}
	if r.ContractID != nil {
		updates["contract_id"] = *r.ContractID
	}
	if r.Type != nil {
		typ, err := model.ParseClauseType(*r.Type)
		if err != nil {
			return nil, err
		}
		updates["type"] = typ
	}
	if r.Summary != nil {
		updates["summary"] = *r.Summary
	}
	if r.Text != nil {
		updates["text"] = *r.Text
	}
	if r.RiskLevel != nil {
		level, err := model.ParseRiskLevel(*r.RiskLevel)
		if err != nil {
			return nil, err
		}
		updates["risk_level"] = level
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	return updates, nil
}

func (h *ClauseHandler) List(c *gin.Context) {
	var filter service.ClauseFilter

	contractID, ok := queryInt(c, "contract_id")
	if !ok {
		return
	}
	filter.ContractID = contractID

	if raw := c.Query("risk_level"); raw != "" {
		level, err := model.ParseRiskLevel(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.RiskLevel = &level
	}

	clauses, err := h.clauses.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clauses)
}

func (h *ClauseHandler) Create(c *gin.Context) {
	var req ClauseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	typ, err := model.ParseClauseType(req.Type)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	riskLevel := model.RiskLevelLow
	if req.RiskLevel != "" {
		if riskLevel, err = model.ParseRiskLevel(req.RiskLevel); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}

	clause := &model.Clause{
		ContractID: req.ContractID,
		Type:       typ,
		Summary:    req.Summary,
		Text:       req.Text,
		RiskLevel:  riskLevel,
		Notes:      req.Notes,
	}
	if err := h.clauses.Create(clause); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, clause)
}

func (h *ClauseHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	clause, err := h.clauses.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clause)
}

func (h *ClauseHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ClauseUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	updates, err := req.fields()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	clause, err := h.clauses.Update(id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clause)
}

func (h *ClauseHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.clauses.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
