package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luca-patrignani/brave-chain/domain/card"
	"github.com/luca-patrignani/brave-chain/domain/evaluation"
)

type handler struct {
	logger *slog.Logger
}

// NewRouter returns a gin engine serving the evaluator routes.
func NewRouter(logger *slog.Logger) *gin.Engine {
	h := handler{logger: logger}
	r := gin.New()
	r.Use(gin.Recovery(), h.logRequests)

	r.GET("/ping", func(c *gin.Context) {
		success(c, gin.H{"message": "pong"})
	})

	v1 := r.Group("/v1")
	{
		v1.GET("/hands/:codes", h.evaluateHand)
	}
	return r
}

func (h handler) evaluateHand(c *gin.Context) {
	codes := c.Param("codes")
	result, err := evaluation.Evaluate(codes)
	if err != nil {
		if errors.Is(err, card.ErrInvalidLength) || errors.Is(err, card.ErrInvalidCardCode) {
			failure(c, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("evaluation failed", "codes", codes, "error", err)
		failure(c, http.StatusInternalServerError, "internal error")
		return
	}
	h.logger.Debug("evaluated hand", "hand", result.Hand.String(), "orders", len(result.ByDamage))
	success(c, result)
}

func (h handler) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.logger.Info("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start).String(),
	)
}
