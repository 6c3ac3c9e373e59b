package http

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestNewPagination(t *testing.T) {
	p := newPagination(25, 1, 10)
	assert.Equal(t, 3, p.Pages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = newPagination(25, 3, 10)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = newPagination(0, 1, 10)
	assert.Equal(t, 0, p.Pages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}

func TestPageParamsDefaults(t *testing.T) {
	c := testContext(t, "/api/spop/legacy")
	page, limit := pageParams(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestPageParamsCapsLimit(t *testing.T) {
	c := testContext(t, "/api/spop/legacy?page=4&limit=500")
	page, limit := pageParams(c)
	assert.Equal(t, 4, page)
	assert.Equal(t, 100, limit)
}

func TestPageParamsRejectsGarbage(t *testing.T) {
	c := testContext(t, "/api/spop/legacy?page=abc&limit=-1")
	page, limit := pageParams(c)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, limit)
}

func TestSearchLinks(t *testing.T) {
	c := testContext(t, "/api/spop/legacy?nm_wp=budi&page=2")
	prev, next := searchLinks(c, 2, 3)
	require.NotEmpty(t, prev)
	require.NotEmpty(t, next)
	assert.Contains(t, prev, "page=1")
	assert.Contains(t, prev, "nm_wp=budi")
	assert.Contains(t, next, "page=3")
}

func TestSearchLinksAtEdges(t *testing.T) {
	c := testContext(t, "/api/spop/legacy?page=1")
	prev, next := searchLinks(c, 1, 1)
	assert.Empty(t, prev)
	assert.Empty(t, next)
}
