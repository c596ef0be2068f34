package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hoshgeldi/core/internal/pkg/response"
	"gorm.io/gorm"
)

const (
	DefaultPage = 1
	// DefaultSize is the fixed page size of the public listings.
	DefaultSize = 5
	MaxSize     = 100
)

// Query holds parsed pagination parameters.
type Query struct {
	Page int
	Size int
}

// FromContext extracts and validates pagination params from the request.
func FromContext(c *gin.Context) Query {
	page := parseIntOr(c.DefaultQuery("page", "1"), DefaultPage)
	size := parseIntOr(c.DefaultQuery("size", "5"), DefaultSize)

	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	if size > MaxSize {
		size = MaxSize
	}

	return Query{Page: page, Size: size}
}

// Paginate applies limit/offset to a GORM query and returns the page
// metadata. Out-of-range page numbers clamp to the nearest valid page
// instead of erroring, so page 9999 of a three-page listing returns the
// last page.
func Paginate[T any](db *gorm.DB, q Query, dest *[]T) (response.Pagination, error) {
	if q.Size < 1 {
		q.Size = DefaultSize
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return response.Pagination{}, err
	}

	totalPage := int((total + int64(q.Size) - 1) / int64(q.Size))
	if totalPage < 1 {
		totalPage = 1
	}
	if q.Page > totalPage {
		q.Page = totalPage
	}
	if q.Page < 1 {
		q.Page = 1
	}

	offset := (q.Page - 1) * q.Size
	if err := db.Offset(offset).Limit(q.Size).Find(dest).Error; err != nil {
		return response.Pagination{}, err
	}

	return response.Pagination{
		Total:       total,
		CurrentPage: q.Page,
		TotalPage:   totalPage,
		Size:        q.Size,
		HasNextPage: q.Page < totalPage,
		HasPrevPage: q.Page > 1,
	}, nil
}

func parseIntOr(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
