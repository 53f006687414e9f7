package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/abhisek/educator/internal/educate"
	"github.com/abhisek/educator/internal/generate"
)

// modelNotReadyMsg matches the message clients key their error UI on.
const modelNotReadyMsg = "AI model is not ready. Please try again later."

// generateRequest is the wire body of POST /api/generate. Optional numeric
// fields are pointers so absent values fall back to defaults.
type generateRequest struct {
	Prompt      string   `json:"prompt"       validate:"required,max=1000"`
	Context     *string  `json:"context"      validate:"omitempty,max=2000"`
	ContentType string   `json:"content_type" validate:"omitempty,oneof=explanation summary quiz lesson example definition"`
	MaxLength   *int     `json:"max_length"   validate:"omitempty,min=50,max=1000"`
	Temperature *float64 `json:"temperature"  validate:"omitempty,min=0.1,max=2.0"`
	TopP        *float64 `json:"top_p"        validate:"omitempty,min=0.1,max=1.0"`
}

// Handler serves the educator API endpoints.
type Handler struct {
	svc              *educate.Service
	validate         *validator.Validate
	logger           *slog.Logger
	templateFallback bool
}

// NewHandler creates the API handler.
func NewHandler(svc *educate.Service, logger *slog.Logger, templateFallback bool) *Handler {
	return &Handler{
		svc:              svc,
		validate:         validator.New(),
		logger:           logger,
		templateFallback: templateFallback,
	}
}

// Generate handles POST /api/generate.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	if !h.svc.Ready() && !h.templateFallback {
		respondError(w, r, http.StatusServiceUnavailable, modelNotReadyMsg)
		return
	}

	genReq := req.toDomain()

	h.logger.Info("generating content",
		"content_type", genReq.ContentType,
		"prompt_len", len(genReq.Prompt),
		"trace_id", TraceIDFrom(r.Context()))

	resp := h.svc.Generate(r.Context(), genReq)

	// Application-level failures keep HTTP 200; Success carries the outcome.
	respondJSON(w, http.StatusOK, resp)
}

// Health handles GET /api/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Health())
}

// ContentTypes handles GET /api/content-types.
func (h *Handler) ContentTypes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, generate.ListContentTypes())
}

func (r generateRequest) toDomain() generate.Request {
	req := generate.NewRequest(r.Prompt, generate.ContentType(r.ContentType), "")
	req.Context = r.Context
	if r.MaxLength != nil {
		req.MaxLength = *r.MaxLength
	}
	if r.Temperature != nil {
		req.Temperature = *r.Temperature
	}
	if r.TopP != nil {
		req.TopP = *r.TopP
	}
	return req
}

// decodeJSON decodes the request body, rejecting unknown or trailing data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected trailing data")
	}
	return nil
}

// validationMessage maps the first validator error to a client-facing
// message in the same shape the field validation produces.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}
	fe := verrs[0]
	switch fe.Field() {
	case "Prompt":
		if fe.Tag() == "required" {
			return "Please enter a topic or question."
		}
		return "prompt must be at most 1000 characters"
	case "Context":
		return "context must be at most 2000 characters"
	case "ContentType":
		return "unknown content type"
	case "MaxLength":
		return "max_length must be between 50 and 1000"
	case "Temperature":
		return "temperature must be between 0.1 and 2.0"
	case "TopP":
		return "top_p must be between 0.1 and 1.0"
	}
	return "Validation error"
}
