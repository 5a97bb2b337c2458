package pagination

import (
	"math"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = map[string]string{
	"id":        "id",
	"name":      "name",
	"birthDate": "birth_date",
}

func TestFromQuery_Defaults(t *testing.T) {
	req, err := FromQuery(url.Values{}, columns)
	require.NoError(t, err)

	assert.Equal(t, 0, req.Page)
	assert.Equal(t, DefaultSize, req.Size)
	assert.Empty(t, req.Sort)
}

func TestFromQuery_ClampsPageAndSize(t *testing.T) {
	cases := []struct {
		page, size       string
		wantPage, wantSz int
	}{
		{"-3", "0", 0, DefaultSize},
		{"abc", "xyz", 0, DefaultSize},
		{"2", "5", 2, 5},
		{"1", "999999", 1, MaxSize},
	}

	for _, tc := range cases {
		req, err := FromQuery(url.Values{"page": {tc.page}, "size": {tc.size}}, columns)
		require.NoError(t, err)
		assert.Equal(t, tc.wantPage, req.Page, "page=%s", tc.page)
		assert.Equal(t, tc.wantSz, req.Size, "size=%s", tc.size)
	}
}

func TestFromQuery_PageNeverOverflowsOffset(t *testing.T) {
	cases := []struct{ page, size string }{
		{"4611686018427387904", "2"},
		{"9223372036854775807", "1"},
		{"99999999999999999999", "2000"},
	}

	for _, tc := range cases {
		req, err := FromQuery(url.Values{"page": {tc.page}, "size": {tc.size}}, columns)
		require.NoError(t, err)

		assert.Positive(t, req.Page, "page=%s", tc.page)
		assert.Positive(t, req.Offset(), "page=%s", tc.page)
		assert.LessOrEqual(t, req.Page, math.MaxInt/req.Size, "page=%s", tc.page)
	}

	req, err := FromQuery(url.Values{"size": {"99999999999999999999"}}, columns)
	require.NoError(t, err)
	assert.Equal(t, MaxSize, req.Size)
}

func TestOffset_Saturates(t *testing.T) {
	assert.Equal(t, math.MaxInt, Request{Page: math.MaxInt, Size: 2}.Offset())
	assert.Equal(t, 40, Request{Page: 2, Size: 20}.Offset())
}

func TestNewPage_LastBeyondRange(t *testing.T) {
	p := NewPage[int](nil, Request{Page: math.MaxInt, Size: 1}, 3)

	assert.True(t, p.Last)
	assert.True(t, p.Empty)
	assert.False(t, p.First)
}

func TestFromQuery_Sort(t *testing.T) {
	q := url.Values{"sort": {"name,desc", "birthDate", "id,ASC"}}

	req, err := FromQuery(q, columns)
	require.NoError(t, err)

	assert.Equal(t, []Order{
		{Column: "name", Direction: Desc},
		{Column: "birth_date", Direction: Asc},
		{Column: "id", Direction: Asc},
	}, req.Sort)
	assert.Equal(t, "name DESC", req.Sort[0].SQL())
}

func TestFromQuery_RejectsUnknownSort(t *testing.T) {
	_, err := FromQuery(url.Values{"sort": {"password"}}, columns)
	assert.ErrorIs(t, err, ErrInvalidSort)

	_, err = FromQuery(url.Values{"sort": {"name,sideways"}}, columns)
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestNewPage_Metadata(t *testing.T) {
	p := NewPage([]int{1, 2}, Request{Page: 2, Size: 2}, 6)

	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, 2, p.NumberOfElements)
	assert.False(t, p.First)
	assert.True(t, p.Last)
	assert.False(t, p.Empty)

	empty := NewPage[int](nil, Request{Page: 0, Size: 20}, 0)
	assert.NotNil(t, empty.Content)
	assert.True(t, empty.Empty)
	assert.True(t, empty.First)
	assert.True(t, empty.Last)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestMap_KeepsMetadata(t *testing.T) {
	p := NewPage([]int{1, 2, 3}, Request{Page: 0, Size: 3}, 7)

	got := Map(p, strconv.Itoa)

	assert.Equal(t, []string{"1", "2", "3"}, got.Content)
	assert.Equal(t, p.TotalElements, got.TotalElements)
	assert.Equal(t, p.TotalPages, got.TotalPages)
	assert.Equal(t, p.Number, got.Number)
	assert.Equal(t, p.Size, got.Size)
}
