package handlers

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kavyaatn/Rag-HR-Chatbot/internal/cache"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/engine"
	"github.com/kavyaatn/Rag-HR-Chatbot/internal/metrics"
	"github.com/kavyaatn/Rag-HR-Chatbot/pkg/logger"
	"github.com/kavyaatn/Rag-HR-Chatbot/pkg/utils"
)

type ChatHandler struct {
	engine            *engine.Engine
	cache             cache.ResultCache
	defaultMaxResults int
}

func NewChatHandler(eng *engine.Engine, resultCache cache.ResultCache, defaultMaxResults int) *ChatHandler {
	if defaultMaxResults <= 0 {
		defaultMaxResults = 5
	}
	return &ChatHandler{
		engine:            eng,
		cache:             resultCache,
		defaultMaxResults: defaultMaxResults,
	}
}

func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req struct {
		Query      string `json:"query"`
		MaxResults int    `json:"max_results"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse chat request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query is required",
		})
	}

	if req.MaxResults == 0 {
		req.MaxResults = h.defaultMaxResults
	}

	queryID := uuid.New().String()
	logger.Info("Processing chat query",
		zap.String("query_id", queryID),
		zap.String("query", req.Query),
		zap.Int("max_results", req.MaxResults),
	)

	cacheKey := utils.HashString(fmt.Sprintf("%s|%d", req.Query, req.MaxResults))
	if h.cache != nil {
		if cached, ok := h.cache.Get(c.Context(), cacheKey); ok {
			metrics.CacheHits.Inc()
			return c.JSON(cached)
		}
		metrics.CacheMisses.Inc()
	}

	start := time.Now()
	result, err := h.engine.AnswerQuery(c.Context(), req.Query, req.MaxResults)
	if err != nil {
		metrics.QueryTotal.WithLabelValues("error").Inc()

		var queryErr *engine.QueryError
		if errors.As(err, &queryErr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": queryErr.Error(),
			})
		}

		logger.Error("Failed to process chat query", zap.String("query_id", queryID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process query",
		})
	}

	metrics.QueryDuration.WithLabelValues(h.engine.Strategy()).Observe(time.Since(start).Seconds())
	metrics.QueryTotal.WithLabelValues("success").Inc()
	metrics.ConfidenceScore.Observe(result.ConfidenceScore)
	metrics.MatchCount.Observe(float64(len(result.MatchedEmployees)))

	if h.cache != nil {
		h.cache.Set(c.Context(), cacheKey, result)
	}

	logger.Info("Chat query processed",
		zap.String("query_id", queryID),
		zap.Int("matches", len(result.MatchedEmployees)),
		zap.Float64("confidence", result.ConfidenceScore),
	)

	return c.JSON(result)
}
