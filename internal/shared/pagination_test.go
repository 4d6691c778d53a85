package shared

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 35)
	assert.Equal(t, 2, p.CurrentPage)
	assert.Equal(t, 4, p.TotalPages)
	assert.Equal(t, 35, p.TotalCount)
	assert.True(t, p.HasNextPage)
	assert.True(t, p.HasPreviousPage)
	assert.Equal(t, 10, p.Offset())
}

func TestNewPaginationBounds(t *testing.T) {
	first := NewPagination(1, 10, 35)
	assert.False(t, first.HasPreviousPage)
	assert.True(t, first.HasNextPage)

	last := NewPagination(4, 10, 35)
	assert.True(t, last.HasPreviousPage)
	assert.False(t, last.HasNextPage)

	empty := NewPagination(1, 10, 0)
	assert.Zero(t, empty.TotalPages)
	assert.False(t, empty.HasNextPage)

	defaulted := NewPagination(0, 0, 5)
	assert.Equal(t, 1, defaulted.CurrentPage)
	assert.Equal(t, DefaultPageSize, defaulted.Limit)
	assert.Zero(t, defaulted.Offset())
}

func TestParsePageLimit(t *testing.T) {
	page, limit, err := ParsePageLimit(url.Values{}, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)

	page, limit, err = ParsePageLimit(url.Values{"page": {"3"}, "limit": {"50"}}, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, page)
	assert.Equal(t, 50, limit)
}

func TestParsePageLimitRejectsBadValues(t *testing.T) {
	cases := []url.Values{
		{"page": {"0"}},
		{"page": {"abc"}},
		{"limit": {"0"}},
		{"limit": {"101"}},
		{"limit": {"ten"}},
	}
	for _, q := range cases {
		_, _, err := ParsePageLimit(q, 10)
		assert.Error(t, err, "values %v", q)
	}

	_, _, err := ParsePageLimit(url.Values{"page": {"-1"}}, 10)
	require.Error(t, err)
	assert.Equal(t, "Invalid page number", err.Error())

	_, _, err = ParsePageLimit(url.Values{"limit": {"500"}}, 10)
	require.Error(t, err)
	assert.Equal(t, "Invalid limit. Must be between 1 and 100", err.Error())
}
