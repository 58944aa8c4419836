package httpapi

import (
	"errors"
	"net/http"

	"github.com/HendryAvila/ijin/internal/quiz"
	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "Internal server error"

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

func errorBody(msg string) gin.H {
	return gin.H{"error": msg}
}

func (s *Server) handleQuestion(c *gin.Context) {
	var req quiz.NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body: "+err.Error()))
		return
	}

	resp, err := s.svc.NextQuestion(c.Request.Context(), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// handleChat reads the transcript from the first message.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid request body: "+err.Error()))
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, errorBody("messages must not be empty"))
		return
	}

	env, err := s.svc.FinalReport(c.Request.Context(), quiz.FinalReportRequest{Transcript: req.Messages[0].Content})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (s *Server) fail(c *gin.Context, err error) {
	if errors.Is(err, quiz.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	s.logger.Error("request failed",
		"route", route(c),
		"error", err,
		"request_id", c.GetString(requestIDKey),
	)
	c.JSON(http.StatusInternalServerError, errorBody(internalErrorMessage))
}
