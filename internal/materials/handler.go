package materials

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"

	"ai-processor/internal/shared/metrics"
	"ai-processor/internal/shared/server/middleware"
	"ai-processor/internal/shared/server/respond"
	"ai-processor/internal/shared/telemetry"
)

const stage = "Processing"

// ProcessRequest is the body of POST /process.
type ProcessRequest struct {
	Materials []Record `json:"materials" binding:"required,min=1"`
	Options   Options  `json:"options"`
}

// ProcessResponse is the body returned by POST /process.
type ProcessResponse struct {
	ProcessedMaterials []Record `json:"processed_materials"`
	ProcessingInfo     Info     `json:"processing_info"`
}

// Handler wires HTTP handlers to the record pipeline.
type Handler struct {
	Pipeline *Pipeline
	MaxBatch int
}

// NewHandler constructs a Handler. maxBatch <= 0 disables the size guard.
func NewHandler(p *Pipeline, maxBatch int) *Handler {
	return &Handler{Pipeline: p, MaxBatch: maxBatch}
}

// RegisterRoutes attaches the process route.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/process", h.process)
}

func (h *Handler) process(c *gin.Context) {
	defer respond.RecoverStage(c, stage)

	var req ProcessRequest
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		respond.Failure(c, stage, fmt.Errorf("decode request: %w", err))
		return
	}
	if err := h.validate(req); err != nil {
		switch {
		case errors.Is(err, ErrNoMaterials):
			respond.Error(c, http.StatusBadRequest, "No materials provided", "")
		case errors.Is(err, ErrBatchTooLarge):
			telemetry.Warn("materials.batch_rejected", map[string]any{
				"request_id": middleware.RequestIDFromContext(c),
				"records":    len(req.Materials),
				"limit":      h.MaxBatch,
			})
			respond.Error(c, http.StatusBadRequest, "Too many materials", err.Error())
		default:
			respond.Failure(c, stage, err)
		}
		return
	}

	telemetry.Debug("materials.received", map[string]any{
		"request_id": middleware.RequestIDFromContext(c),
		"records":    len(req.Materials),
	})
	processed, info, err := h.Pipeline.Process(req.Materials, req.Options)
	if err != nil {
		respond.Failure(c, stage, err)
		return
	}

	outliers := 0
	for _, r := range processed {
		if r.flag(FieldOutlierFlag) {
			outliers++
		}
	}
	metrics.ObserveProcessedBatch(info.TotalRecords, info.ImputedRecords, info.CategorizedRecords, outliers)
	telemetry.Info("materials.processed", map[string]any{
		"request_id":          middleware.RequestIDFromContext(c),
		"total_records":       info.TotalRecords,
		"imputed_records":     info.ImputedRecords,
		"categorized_records": info.CategorizedRecords,
		"outlier_records":     outliers,
	})

	respond.OK(c, ProcessResponse{
		ProcessedMaterials: processed,
		ProcessingInfo:     info,
	})
}

func (h *Handler) validate(req ProcessRequest) error {
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return ErrNoMaterials
		}
		return err
	}
	if h.MaxBatch > 0 && len(req.Materials) > h.MaxBatch {
		return fmt.Errorf("%w: %d records exceeds limit of %d", ErrBatchTooLarge, len(req.Materials), h.MaxBatch)
	}
	return nil
}
