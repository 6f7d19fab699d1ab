package services

import (
	"gorm.io/gorm"
)

// PageSize is the fixed page size for every list operation.
const PageSize = 20

// Pagination describes one page of a list result.
type Pagination struct {
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	Total      int64 `json:"total"`
}

// paginate counts the scoped query, clamps the page number and applies
// limit/offset. Empty result sets yield an empty page, never an error.
func paginate(query *gorm.DB, model interface{}, page int) (*gorm.DB, Pagination, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := query.Model(model).Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	offset := (page - 1) * PageSize

	p := Pagination{Page: page, TotalPages: totalPages, Total: total}
	return query.Limit(PageSize).Offset(offset), p, nil
}
