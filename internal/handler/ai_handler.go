package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/awf1337/instantly/internal/model"
)

// ComposeService is what the AI handlers need from the orchestration layer.
type ComposeService interface {
	Route(ctx context.Context, prompt string) (model.Category, error)
	Generate(ctx context.Context, req model.GenerationRequest) (model.GeneratedContent, error)
}

type AIHandler struct {
	compose ComposeService
	logger  *zap.Logger
}

func NewAIHandler(compose ComposeService, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		compose: compose,
		logger:  logger,
	}
}

// RouteEmail handles POST /emails/ai/route
func (h *AIHandler) RouteEmail(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	category, err := h.compose.Route(c.Request.Context(), req.Prompt)
	if err != nil {
		h.logger.Error("failed to route email request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to route email request"})
		return
	}

	// Classifier output outside the known set is never forwarded downstream.
	if category == model.CategoryUnknown {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not classify request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"message":  fmt.Sprintf("Routed to %s assistant", category),
	})
}

// GenerateSales handles POST /emails/ai/sales
func (h *AIHandler) GenerateSales(c *gin.Context) {
	var req struct {
		Prompt            string `json:"prompt"`
		RecipientBusiness string `json:"recipientBusiness"`
		RecipientName     string `json:"recipientName"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	content, err := h.compose.Generate(c.Request.Context(), model.GenerationRequest{
		Category:          model.CategorySales,
		Prompt:            req.Prompt,
		RecipientBusiness: req.RecipientBusiness,
		RecipientName:     req.RecipientName,
	})
	if err != nil {
		h.logger.Error("failed to generate sales email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate sales email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"email": gin.H{
			"subject": content.Subject,
			"body":    content.Body,
		},
	})
}

// GenerateFollowup handles POST /emails/ai/followup
func (h *AIHandler) GenerateFollowup(c *gin.Context) {
	var req struct {
		Prompt          string `json:"prompt"`
		RecipientName   string `json:"recipientName"`
		PreviousContext string `json:"previousContext"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prompt is required"})
		return
	}

	content, err := h.compose.Generate(c.Request.Context(), model.GenerationRequest{
		Category:        model.CategoryFollowup,
		Prompt:          req.Prompt,
		RecipientName:   req.RecipientName,
		PreviousContext: req.PreviousContext,
	})
	if err != nil {
		h.logger.Error("failed to generate follow-up email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate follow-up email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"email": gin.H{
			"subject": content.Subject,
			"body":    content.Body,
		},
	})
}
