// file: internals/helpers/json_response_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	pg := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 2, pg.Page)
	assert.Equal(t, 20, pg.PerPage)
	assert.Equal(t, int64(45), pg.Total)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)
}

func TestBuildPaginationFromPage_Defaults(t *testing.T) {
	pg := BuildPaginationFromPage(0, 0, 0)
	assert.Equal(t, 1, pg.Page)
	assert.Equal(t, 20, pg.PerPage)
	assert.Equal(t, 1, pg.TotalPages)
	assert.False(t, pg.HasNext)
	assert.False(t, pg.HasPrev)
}

func TestBuildPaginationFromOffset(t *testing.T) {
	pg := BuildPaginationFromOffset(100, 40, 20)
	assert.Equal(t, 3, pg.Page)
	assert.Equal(t, 5, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	first := BuildPaginationFromOffset(100, 0, 20)
	assert.Equal(t, 1, first.Page)
	assert.False(t, first.HasPrev)
}
