package dto

type PaginationMetadata struct {
	TotalCount   uint64 `json:"total_count"`
	Page         uint64 `json:"page"`
	Limit        int    `json:"limit"`
	TotalPages   int    `json:"total_pages"`
	From         int    `json:"from"`
	To           int    `json:"to"`
	HasPrevious  bool   `json:"has_previous"`
	HasNext      bool   `json:"has_next"`
	ShowControls bool   `json:"show_controls"`
	PageWindow   []int  `json:"page_window"`
}

type PaginationResponse struct {
	Metadata PaginationMetadata `json:"_metadata"`
	Records  interface{}        `json:"records"`
}
