package generate

// Wire shapes for the generation API. The same structs serve the HTTP
// server handlers and the typed client.

// Response is the body of POST /api/generate. On success, GeneratedText
// holds the content and Error is empty; on failure Success is false and
// Error carries the reason (it may be empty, callers fall back to a
// generic message).
type Response struct {
	Success        bool           `json:"success"`
	GeneratedText  string         `json:"generated_text,omitempty"`
	Prompt         string         `json:"prompt,omitempty"`
	Context        *string        `json:"context,omitempty"`
	ContentType    ContentType    `json:"content_type,omitempty"`
	Parameters     map[string]any `json:"parameters,omitempty"`
	Error          string         `json:"error,omitempty"`
	ProcessingTime float64        `json:"processing_time"`
}

// HealthStatus is the body of GET /api/health.
type HealthStatus struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	ModelLoaded bool   `json:"model_loaded"`
	Timestamp   string `json:"timestamp,omitempty"`
}

// ContentTypeInfo describes one content type in GET /api/content-types.
type ContentTypeInfo struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// ContentTypeList is the body of GET /api/content-types.
type ContentTypeList struct {
	ContentTypes []ContentTypeInfo `json:"content_types"`
}

// ListContentTypes builds the content-types payload.
func ListContentTypes() ContentTypeList {
	var list ContentTypeList
	for _, t := range AllContentTypes() {
		list.ContentTypes = append(list.ContentTypes, ContentTypeInfo{
			Value:       string(t),
			Label:       t.Label(),
			Description: t.Description(),
		})
	}
	return list
}
