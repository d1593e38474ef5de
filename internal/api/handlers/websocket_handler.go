package handlers

import (
	"context"
	"strings"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/engine"
	"github.com/kavyaatn/Rag-HR-Chatbot/pkg/logger"
)

// WebSocketHandler streams chat responses word by word for the dashboard.
type WebSocketHandler struct {
	engine            *engine.Engine
	defaultMaxResults int
}

// jsonWriter is the slice of *websocket.Conn the stream path needs.
type jsonWriter interface {
	WriteJSON(v interface{}) error
}

func NewWebSocketHandler(eng *engine.Engine, defaultMaxResults int) *WebSocketHandler {
	if defaultMaxResults <= 0 {
		defaultMaxResults = 5
	}
	return &WebSocketHandler{
		engine:            eng,
		defaultMaxResults: defaultMaxResults,
	}
}

func (h *WebSocketHandler) HandleConnection(c *websocket.Conn) {
	logger.Info("WebSocket connection established")

	defer func() {
		c.Close()
		logger.Info("WebSocket connection closed")
	}()

	for {
		var msg struct {
			Type       string `json:"type"`
			Content    string `json:"content"`
			MaxResults int    `json:"max_results"`
		}

		if err := c.ReadJSON(&msg); err != nil {
			logger.Debug("WebSocket read ended", zap.Error(err))
			break
		}

		if msg.Type != "query" {
			continue
		}

		if msg.MaxResults == 0 {
			msg.MaxResults = h.defaultMaxResults
		}

		logger.Info("Processing WebSocket query", zap.String("query", msg.Content))

		if err := h.streamResult(c, msg.Content, msg.MaxResults); err != nil {
			logger.Error("Failed to stream chat result", zap.Error(err))
			h.sendError(c, "Failed to process query")
		}
	}
}

func (h *WebSocketHandler) streamResult(c jsonWriter, query string, maxResults int) error {
	if err := h.send(c, "status", "Searching the employee directory..."); err != nil {
		return err
	}

	result, err := h.engine.AnswerQuery(context.Background(), query, maxResults)
	if err != nil {
		return err
	}

	words := strings.Fields(result.Response)
	for i, word := range words {
		chunk := word
		if i < len(words)-1 {
			chunk += " "
		}
		if err := h.send(c, "chunk", chunk); err != nil {
			return err
		}
	}

	return c.WriteJSON(map[string]interface{}{
		"type":              "complete",
		"message_id":        uuid.New().String(),
		"matched_employees": result.MatchedEmployees,
		"confidence":        result.ConfidenceScore,
	})
}

func (h *WebSocketHandler) send(c jsonWriter, msgType, content string) error {
	return c.WriteJSON(map[string]interface{}{
		"type":    msgType,
		"content": content,
	})
}

func (h *WebSocketHandler) sendError(c *websocket.Conn, errorMsg string) {
	c.WriteJSON(map[string]interface{}{
		"type":  "error",
		"error": errorMsg,
	})
}
