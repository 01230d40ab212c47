package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ooda-AI-GB/gb-gdev-legal/model"
	"github.com/ooda-AI-GB/gb-gdev-legal/service"
)

type NoteHandler struct {
	notes *service.NoteService
}

func NewNoteHandler(notes *service.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type NoteCreateRequest struct {
	ReferenceType string `json:"reference_type" binding:"required"`
	ReferenceID   *int   `json:"reference_id"`
	Content       string `json:"content" binding:"required"`
	Author        string `json:"author" binding:"required"`
}

type NoteUpdateRequest struct {
	ReferenceType *string `json:"reference_type"`
	ReferenceID   *int    `json:"reference_id"`
	Content       *string `json:"content"`
	Author        *string `json:"author"`
}

func (r *NoteUpdateRequest) fields() (map[string]any, error) {
	updates := map[string]any{}
	if r.ReferenceType != nil {
		refType, err := model.ParseReferenceType(*r.ReferenceType)
		if err != nil {
			return nil, err
		}
		updates["reference_type"] = refType
	}
	if r.ReferenceID != nil {
		updates["reference_id"] = *r.ReferenceID
	}
	if r.Content != nil {
		updates["content"] = *r.Content
	}
	if r.Author != nil {
		updates["author"] = *r.Author
	}
	return updates, nil
}

func (h *NoteHandler) List(c *gin.Context) {
	var filter service.NoteFilter

	if raw := c.Query("reference_type"); raw != "" {
		refType, err := model.ParseReferenceType(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		filter.ReferenceType = &refType
	}

	referenceID, ok := queryInt(c, "reference_id")
	if !ok {
		return
	}
	filter.ReferenceID = referenceID

	if raw := c.Query("author"); raw != "" {
		filter.Author = &raw
	}

	notes, err := h.notes.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req NoteCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	refType, err := model.ParseReferenceType(req.ReferenceType)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	// reference_id is advisory metadata; it is stored as given without
	// checking the referenced table.
	note := &model.LegalNote{
		ReferenceType: refType,
		ReferenceID:   req.ReferenceID,
		Content:       req.Content,
		Author:        req.Author,
	}
	if err := h.notes.Create(note); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	note, err := h.notes.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req NoteUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	updates, err := req.fields()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	note, err := h.notes.Update(id, updates)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.notes.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
