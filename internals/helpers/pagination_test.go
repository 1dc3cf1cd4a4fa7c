package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(2, 10, 10, 25)

	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, int64(25), p.Total)
}

func TestBuildPagination_LastPage(t *testing.T) {
	p := BuildPagination(3, 10, 5, 25)

	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 5, p.Count)
}

func TestBuildPagination_Empty(t *testing.T) {
	p := BuildPagination(1, 10, 0, 0)

	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
