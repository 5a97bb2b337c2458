package pagination

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultSize = 20
	MaxSize     = 2000
)

var ErrInvalidSort = errors.New("invalid sort")

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order is an already resolved column, never raw user input.
type Order struct {
	Column    string
	Direction Direction
}

func (o Order) SQL() string {
	return o.Column + " " + string(o.Direction)
}

// Request is a zero-based page request.
type Request struct {
	Page int
	Size int
	Sort []Order
}

// Offset saturates at math.MaxInt instead of overflowing.
func (r Request) Offset() int {
	if r.Size > 0 && r.Page > math.MaxInt/r.Size {
		return math.MaxInt
	}
	return r.Page * r.Size
}

// FromQuery reads page, size and sort (property[,asc|desc], repeatable).
// Bad page/size values are clamped, page low enough that Offset fits an
// int. Unknown sort properties fail with ErrInvalidSort because they cannot
// be mapped to a column.
func FromQuery(q url.Values, columns map[string]string) (Request, error) {
	req := Request{Page: 0, Size: DefaultSize}

	// Atoi saturates out of range input at math.MaxInt with ErrRange.
	if v, err := strconv.Atoi(q.Get("size")); err == nil || errors.Is(err, strconv.ErrRange) {
		switch {
		case v < 1:
			req.Size = DefaultSize
		case v > MaxSize:
			req.Size = MaxSize
		default:
			req.Size = v
		}
	}

	v, err := strconv.Atoi(q.Get("page"))
	if (err == nil || errors.Is(err, strconv.ErrRange)) && v > 0 {
		req.Page = min(v, math.MaxInt/req.Size)
	}

	for _, raw := range q["sort"] {
		if strings.TrimSpace(raw) == "" {
			continue
		}

		parts := strings.Split(raw, ",")
		prop := strings.TrimSpace(parts[0])

		col, ok := columns[prop]
		if !ok {
			return Request{}, fmt.Errorf("%w: unknown property %q", ErrInvalidSort, prop)
		}

		dir := Asc
		if len(parts) > 1 {
			switch strings.ToUpper(strings.TrimSpace(parts[1])) {
			case "ASC", "":
			case "DESC":
				dir = Desc
			default:
				return Request{}, fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, parts[1])
			}
		}

		req.Sort = append(req.Sort, Order{Column: col, Direction: dir})
	}

	return req, nil
}

type Page[T any] struct {
	Content          []T   `json:"content"`
	Number           int   `json:"number"`
	Size             int   `json:"size"`
	TotalElements    int64 `json:"totalElements"`
	TotalPages       int   `json:"totalPages"`
	NumberOfElements int   `json:"numberOfElements"`
	First            bool  `json:"first"`
	Last             bool  `json:"last"`
	Empty            bool  `json:"empty"`
}

func NewPage[T any](content []T, req Request, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if req.Size > 0 {
		totalPages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}

	return Page[T]{
		Content:          content,
		Number:           req.Page,
		Size:             req.Size,
		TotalElements:    total,
		TotalPages:       totalPages,
		NumberOfElements: len(content),
		First:            req.Page == 0,
		Last:             req.Page >= totalPages-1,
		Empty:            len(content) == 0,
	}
}

// Map converts the content and keeps the metadata untouched.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Content))
	for i, item := range p.Content {
		out[i] = fn(item)
	}

	return Page[U]{
		Content:          out,
		Number:           p.Number,
		Size:             p.Size,
		TotalElements:    p.TotalElements,
		TotalPages:       p.TotalPages,
		NumberOfElements: p.NumberOfElements,
		First:            p.First,
		Last:             p.Last,
		Empty:            p.Empty,
	}
}
