package dto

type IngestRequest struct {
	Tenant     string `form:"tenant" validate:"required"`
	DocType    string `form:"doc_type"`
	Department string `form:"department"`
	Country    string `form:"country"`
	Version    string `form:"version"`
}

type IngestResponse struct {
	Docs      int    `json:"docs"`
	Chunks    int    `json:"chunks"`
	IndexPath string `json:"index_path"`
	TraceId   string `json:"traceId"`
}
