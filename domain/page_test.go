package domain_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratikw008/blog-rest-api/domain"
)

func TestNewPage(t *testing.T) {
	pr := domain.PageRequest{PageNo: 0, PageSize: 10, SortBy: "id", SortDir: "asc"}

	t.Run("first of several pages", func(t *testing.T) {
		page := domain.NewPage(make([]int, 10), pr, 25)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, int64(25), page.TotalElements)
		assert.False(t, page.Last)
	})

	t.Run("last page", func(t *testing.T) {
		pr := pr
		pr.PageNo = 2
		page := domain.NewPage(make([]int, 5), pr, 25)
		assert.True(t, page.Last)
		assert.Equal(t, 2, page.PageNo)
	})

	t.Run("beyond range", func(t *testing.T) {
		pr := pr
		pr.PageNo = 7
		page := domain.NewPage[int](nil, pr, 25)
		assert.NotNil(t, page.Content)
		assert.Empty(t, page.Content)
		assert.True(t, page.Last)
		assert.Equal(t, 3, page.TotalPages)
	})

	t.Run("exact multiple", func(t *testing.T) {
		page := domain.NewPage(make([]int, 10), pr, 10)
		assert.Equal(t, 1, page.TotalPages)
		assert.True(t, page.Last)
	})
}

func TestEmptyPage(t *testing.T) {
	page := domain.EmptyPage[domain.Post]()
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Zero(t, page.PageNo)
	assert.Zero(t, page.PageSize)
	assert.Zero(t, page.TotalElements)
	assert.Zero(t, page.TotalPages)
	assert.False(t, page.Last)
}

func TestPageRequestValidate(t *testing.T) {
	ok := domain.PageRequest{PageNo: 0, PageSize: 10, SortBy: "title", SortDir: "desc"}
	require.NoError(t, ok.Validate(domain.PostSortColumns))

	bad := domain.PageRequest{PageNo: -1, PageSize: 0, SortBy: "author"}
	err := bad.Validate(domain.PostSortColumns)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadParamInput))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.Contains(t, verr.Fields, "pageNo")
	assert.Contains(t, verr.Fields, "pageSize")
	assert.Contains(t, verr.Fields, "sortBy")
}

func TestPageRequestDesc(t *testing.T) {
	assert.False(t, domain.PageRequest{SortDir: "asc"}.Desc())
	assert.False(t, domain.PageRequest{SortDir: "ASC"}.Desc())
	assert.True(t, domain.PageRequest{SortDir: "desc"}.Desc())
	assert.True(t, domain.PageRequest{SortDir: "sideways"}.Desc())
	assert.Equal(t, 20, domain.PageRequest{PageNo: 2, PageSize: 10}.Offset())
}

func TestPageRequestValidateBounds(t *testing.T) {
	cases := map[string]struct {
		pr    domain.PageRequest
		field string
	}{
		"huge pageNo":        {domain.PageRequest{PageNo: math.MaxInt, PageSize: 10, SortBy: "id"}, "pageNo"},
		"huge pageSize":      {domain.PageRequest{PageNo: 0, PageSize: math.MaxInt, SortBy: "id"}, "pageSize"},
		"pageSize just over": {domain.PageRequest{PageNo: 0, PageSize: domain.MaxPageSize + 1, SortBy: "id"}, "pageSize"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var verr *domain.ValidationError
			require.ErrorAs(t, tc.pr.Validate(domain.PostSortColumns), &verr)
			assert.Len(t, verr.Fields, 1)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}

	edge := domain.PageRequest{PageNo: domain.MaxPageNo, PageSize: domain.MaxPageSize, SortBy: "id"}
	require.NoError(t, edge.Validate(domain.PostSortColumns))
	assert.Positive(t, edge.Offset())
}
