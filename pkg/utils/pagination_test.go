package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	p := NormalizePage(0, -1)
	assert.Equal(t, Page{Page: 1, Limit: 0}, p)

	p = NormalizePage(2, 20)
	assert.Equal(t, Page{Page: 2, Limit: 20}, p)

	p = NormalizePage(1, 5000)
	assert.Equal(t, MaxPageLimit, p.Limit)
}

func TestPage_Offset(t *testing.T) {
	assert.Equal(t, 0, Page{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, Page{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, Page{Page: 3, Limit: 0}.Offset())
}

func TestNewPageMeta(t *testing.T) {
	meta := NewPageMeta(101, Page{Page: 2, Limit: 20})
	assert.Equal(t, PageMeta{Page: 2, Limit: 20, TotalCount: 101, TotalPages: 6}, meta)

	all := NewPageMeta(15, Page{Page: 4, Limit: 0})
	assert.Equal(t, PageMeta{Page: 1, Limit: 15, TotalCount: 15, TotalPages: 1}, all)

	empty := NewPageMeta(0, Page{Page: 1, Limit: 10})
	assert.Equal(t, 0, empty.TotalPages)
}
