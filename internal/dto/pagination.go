package dto

import (
	"github.com/alimikegami/point-of-sales/storefront-service/internal/listing"
	pkgdto "github.com/alimikegami/point-of-sales/storefront-service/pkg/dto"
)

type PaginationPage = pkgdto.PaginationResponse

// NewPaginationPage pairs already-mapped records with the listing state they came from.
func NewPaginationPage(state listing.State, records interface{}) PaginationPage {
	window := state.Window
	if window == nil {
		window = []int{}
	}
	return PaginationPage{
		Metadata: pkgdto.PaginationMetadata{
			TotalCount:   uint64(state.TotalCount),
			Page:         uint64(state.CurrentPage),
			Limit:        state.ItemsPerPage,
			TotalPages:   state.TotalPages,
			From:         state.From,
			To:           state.To,
			HasPrevious:  state.HasPrevious,
			HasNext:      state.HasNext,
			ShowControls: state.ShowControls,
			PageWindow:   window,
		},
		Records: records,
	}
}
