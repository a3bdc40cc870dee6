// internal/server/handler.go
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/beigestudio/linkedin-lead-lab-report/internal/audit"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/catalog"
	cerrors "github.com/beigestudio/linkedin-lead-lab-report/internal/common/errors"
	"github.com/beigestudio/linkedin-lead-lab-report/internal/common/logger"
)

// AuditService is the pipeline boundary the handler delegates to.
type AuditService interface {
	GenerateAudit(ctx context.Context, req audit.Request) (*audit.Result, error)
}

// Handler serves the questionnaire boundary: one audit endpoint plus the
// read-only question catalog.
type Handler struct {
	service AuditService
	logger  logger.Logger
}

func NewHandler(service AuditService, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// errorEnvelope is the boundary error contract: a kind discriminator the UI
// maps to a user-facing message, plus the retryability hint.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// HandleAudit runs the report pipeline for one completed questionnaire.
func (h *Handler) HandleAudit(c *gin.Context) {
	var req audit.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorEnvelope{Error: errorBody{
			Kind:      string(cerrors.ErrCodeValidationFailed),
			Message:   "request body is not a valid audit submission",
			Retryable: false,
		}})
		return
	}

	result, err := h.service.GenerateAudit(c.Request.Context(), req)
	if err != nil {
		stdErr := cerrors.AsStandardError(err)
		c.JSON(cerrors.HTTPStatus(stdErr.Code), errorEnvelope{Error: errorBody{
			Kind:      string(stdErr.Code),
			Message:   stdErr.Message,
			Retryable: stdErr.Retryable,
		}})
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleQuestions serves the static question catalog consumed by the UI.
func (h *Handler) HandleQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": catalog.Questions()})
}

// NewRouter wires the boundary routes.
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.POST("/api/v1/audit", h.HandleAudit)
	router.GET("/api/v1/questions", h.HandleQuestions)

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
