package output

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/tplgen/pkg/errors"
	"github.com/arthur-debert/tplgen/pkg/types"
)

// JSONRenderer writes indented JSON for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

type jsonResult struct {
	Command string `json:"command"`
	types.Summary
	Complete bool `json:"complete"`
}

type jsonError struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RenderSummary renders the run summary as JSON
func (r *JSONRenderer) RenderSummary(summary types.Summary) error {
	return r.encoder.Encode(jsonResult{Command: "render", Summary: withMappings(summary), Complete: summary.Complete()})
}

// RenderPlan renders the planned mappings as JSON
func (r *JSONRenderer) RenderPlan(summary types.Summary) error {
	return r.encoder.Encode(jsonResult{Command: "list", Summary: withMappings(summary), Complete: true})
}

// RenderError renders an error with its code and details
func (r *JSONRenderer) RenderError(err error) error {
	if err == nil {
		return nil
	}
	return r.encoder.Encode(jsonError{
		Error:   errors.GetErrorMessage(err),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

// RenderMessage renders a simple message as JSON
func (r *JSONRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}

// withMappings keeps an empty mapping list as [] rather than null
func withMappings(summary types.Summary) types.Summary {
	if summary.Mappings == nil {
		summary.Mappings = types.MappingSet{}
	}
	return summary
}
