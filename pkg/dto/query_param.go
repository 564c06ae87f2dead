package dto

type Filter struct {
	Page     int    `query:"page"`
	Q        string `query:"q"`
	Category string `query:"category"`
}
