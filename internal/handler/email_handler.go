package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/model"
	"github.com/awf1337/instantly/internal/repository"
)

// EmailService is what the email handlers need from the service layer.
type EmailService interface {
	Create(ctx context.Context, to string, cc, bcc *string, subject, body string) (int, error)
	List(ctx context.Context) ([]model.Email, error)
	Get(ctx context.Context, id int) (*model.Email, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Email, error)
}

type EmailHandler struct {
	emails EmailService
	logger *zap.Logger
}

func NewEmailHandler(emails EmailService, logger *zap.Logger) *EmailHandler {
	return &EmailHandler{
		emails: emails,
		logger: logger,
	}
}

// CreateEmail handles POST /emails
func (h *EmailHandler) CreateEmail(c *gin.Context) {
	var req struct {
		To      string  `json:"to"`
		CC      *string `json:"cc"`
		BCC     *string `json:"bcc"`
		Subject string  `json:"subject"`
		Body    string  `json:"body"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if strings.TrimSpace(req.To) == "" || strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Body) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: to, subject, and body are required"})
		return
	}

	id, err := h.emails.Create(c.Request.Context(), req.To, req.CC, req.BCC, req.Subject, req.Body)
	if err != nil {
		h.logger.Error("failed to create email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Email created successfully",
		"id":      id,
	})
}

// ListEmails handles GET /emails
func (h *EmailHandler) ListEmails(c *gin.Context) {
	emails, err := h.emails.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to list emails", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emails": emails,
		"count":  len(emails),
	})
}

// GetEmail handles GET /emails/:id
func (h *EmailHandler) GetEmail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid email ID is required"})
		return
	}

	email, err := h.emails.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Email not found"})
			return
		}
		h.logger.Error("failed to fetch email", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, email)
}

// ListEmailsByUser handles GET /emails/user/:userFK
func (h *EmailHandler) ListEmailsByUser(c *gin.Context) {
	userFK := c.Param("userFK")

	emails, err := h.emails.ListByOwner(c.Request.Context(), userFK)
	if err != nil {
		h.logger.Error("failed to list emails by user", zap.String("userFK", userFK), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"emails": emails,
		"count":  len(emails),
		"userFK": userFK,
	})
}
