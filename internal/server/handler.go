package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aswincandra/olist-analytics/internal/service"
)

type ChatRequest struct {
	Query string `json:"query" binding:"required"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}

// Handler holds dependencies for the HTTP handlers.
type Handler struct {
	answers service.AnswerService
}

func NewHandler(answers service.AnswerService) *Handler {
	return &Handler{answers: answers}
}

// Health reports that the backend is up.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Backend running",
	})
}

// Chat answers one question. Store failures and unmatched questions still
// produce 200 with explanatory text; only a malformed request body is a
// client error.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be JSON with a query field"})
		return
	}

	answer := h.answers.Answer(c.Request.Context(), req.Query)
	c.JSON(http.StatusOK, ChatResponse{Answer: answer})
}

// Index serves the built-in web form.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
}
