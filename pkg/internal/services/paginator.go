package services

import (
	"strconv"
	"strings"

	"git.solsynth.dev/hypernet/yatube/pkg/internal/models"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const DefaultPageSize = 10

func PageSize() int {
	if size := viper.GetInt("paginator.page_size"); size > 0 {
		return size
	}
	return DefaultPageSize
}

type Page[T any] struct {
	Number      int   `json:"number"`
	Size        int   `json:"size"`
	TotalPages  int   `json:"total_pages"`
	Count       int64 `json:"count"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
	Data        []T   `json:"data"`
}

type Paginator struct {
	Count int64
	Size  int
}

func NewPaginator(count int64, size int) Paginator {
	if size <= 0 {
		size = DefaultPageSize
	}
	return Paginator{Count: count, Size: size}
}

// TotalPages is ceil(count / size), an empty collection still has one empty page.
func (p Paginator) TotalPages() int {
	if p.Count <= 0 {
		return 1
	}
	size := int64(p.Size)
	return int((p.Count + size - 1) / size)
}

// Resolve turns the raw page parameter into a valid page number.
// Anything that is not a number is the first page, numbers out of
// range land on the last page.
func (p Paginator) Resolve(raw string) int {
	number, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1
	}
	if total := p.TotalPages(); number < 1 || number > total {
		return total
	}
	return number
}

func (p Paginator) Offset(number int) int {
	return (number - 1) * p.Size
}

func NewPage[T any](p Paginator, number int, data []T) Page[T] {
	total := p.TotalPages()
	return Page[T]{
		Number:      number,
		Size:        p.Size,
		TotalPages:  total,
		Count:       p.Count,
		HasNext:     number < total,
		HasPrevious: number > 1,
		Data:        data,
	}
}

// ListPostPage counts the filtered posts and loads the requested page, newest first.
func ListPostPage(tx *gorm.DB, raw string) (Page[models.Post], error) {
	tx = tx.Session(&gorm.Session{})

	count, err := CountPost(tx)
	if err != nil {
		return Page[models.Post]{}, err
	}

	paginator := NewPaginator(count, PageSize())
	number := paginator.Resolve(raw)

	items, err := ListPost(tx, paginator.Size, paginator.Offset(number), PostDefaultOrder)
	if err != nil {
		return Page[models.Post]{}, err
	}

	return NewPage(paginator, number, items), nil
}
