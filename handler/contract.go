package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
	"github.com/ooda-AI-GB/gb-gdev-legal/service"
)

type ContractHandler struct {
	contracts *service.ContractService
}

func NewContractHandler(contracts *service.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

type ContractCreateRequest struct {
	Title             string      `json:"title" binding:"required"`
	Type              string      `json:"type" binding:"required"`
	Status            string      `json:"status"`
	Counterparty      string      `json:"counterparty" binding:"required"`
	CounterpartyEmail *string     `json:"counterparty_email"`
	StartDate         *model.Date `json:"start_date"`
	EndDate           *model.Date `json:"end_date"`
	RenewalDate       *model.Date `json:"renewal_date"`
	AutoRenew         bool        `json:"auto_renew"`
	Value             *float64    `json:"value"`
	Currency          string      `json:"currency"`
	Summary           *string     `json:"summary"`
	FileURL           *string     `json:"file_url"`
	SignedDate        *model.Date `json:"signed_date"`
}

type ContractUpdateRequest struct {
	Title             *string     `json:"title"`
	Type              *string     `json:"type"`
	Status            *string     `json:"status"`
	Counterparty      *string     `json:"counterparty"`
	CounterpartyEmail *string     `json:"counterparty_email"`
	StartDate         *model.Date `json:"start_date"`
	EndDate           *model.Date `json:"end_date"`
	RenewalDate       *model.Date `json:"renewal_date"`
	AutoRenew         *bool       `json:"auto_renew"`
	Value             *float64    `json:"value"`
	Currency          *string     `json:"currency"`
	Summary           *string     `json:"summary"`
	FileURL           *string     `json:"file_url"`
	SignedDate        *model.Date `json:"signed_date"`
}

// fields collects the supplied fields into a column update map, validating
// enum values on the way.
func (r *ContractUpdateRequest) fields() (map[string]any, error) {
	updates := map[string]any{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Type != nil {
		typ, err := model.ParseContractType(*r.Type)
		if err != nil {
			return nil, err
		}
		updates["type"] = typ
	}
	if r.Status != nil {
		status, err := model.ParseContractStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		updates["status"] = status
	}
	if r.Counterparty != nil {
		updates["counterparty"] = *r.Counterparty
	}
	if r.CounterpartyEmail != nil {
		updates["counterparty_email"] = *r.CounterpartyEmail
	}
	if r.StartDate != nil {
		updates["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		updates["end_date"] = *r.EndDate
	}
	if r.RenewalDate != nil {
		updates["renewal_date"] = *r.RenewalDate
	}
	if r.AutoRenew != nil {
		updates["auto_renew"] = *r.AutoRenew
	}
	if r.Value != nil {
		updates["value"] = *r.Value
	}
	if r.Currency != nil {
		updates["currency"] = *r.Currency
	}
	if r.Summary != nil {
		updates["summary"] = *r.Summary
	}
	if r.FileURL != nil {
		updates["file_url"] = *r.FileURL
	}
	if r.SignedDate != nil {
		updates["signed_date"] = *r.SignedDate
	}
	return updates, nil
}

// List returns contracts, optionally filtered by status and an
// expiring_within day window on end_date.
func (h *ContractHandler) List(c *gin.Context) {
	var filter service.ContractFilter

	if raw := c.Query("status"); raw != "" {
		status, err := model.ParseContractStatus(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.Status = &status
	}

	expiringWithin, ok := queryInt(c, "expiring_within")
	if !ok {
		return
	}
	filter.ExpiringWithin = expiringWithin

	contracts, err := h.contracts.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts)
}

func (h *ContractHandler) Create(c *gin.Context) {
	var req ContractCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	typ, err := model.ParseContractType(req.Type)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	status := model.ContractStatusDraft
	if req.Status != "" {
		if status, err = model.ParseContractStatus(req.Status); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	contract := &model.Contract{
		Title:             req.Title,
		Type:              typ,
		Status:            status,
		Counterparty:      req.Counterparty,
		CounterpartyEmail: req.CounterpartyEmail,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		RenewalDate:       req.RenewalDate,
		AutoRenew:         req.AutoRenew,
		Value:             req.Value,
		Currency:          currency,
		Summary:           req.Summary,
		FileURL:           req.FileURL,
		SignedDate:        req.SignedDate,
	}
	if err := h.contracts.Create(contract); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contract)
}

func (h *ContractHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	contract, err := h.contracts.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ContractUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	updates, err := req.fields()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	contract, err := h.contracts.Update(id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *ContractHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.contracts.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clauses returns the clauses of one contract, 404 when the contract is
// absent.
func (h *ContractHandler) Clauses(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	clauses, err := h.contracts.Clauses(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, clauses)
}
