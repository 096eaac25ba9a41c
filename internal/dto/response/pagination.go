package response

import "eventhub/pkg/utils"

type PaginatedResponse[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

func NewPaginatedResponse[T any](items []T, page, perPage, totalItems int) PaginatedResponse[T] {
	totalPages := utils.CalculateTotalPages(int64(totalItems), perPage)
	return PaginatedResponse[T]{
		Items:      items,
		Page:       page,
		PerPage:    perPage,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
