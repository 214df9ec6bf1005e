package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestPageParamsClamping(t *testing.T) {
	cases := []struct {
		query     string
		wantPage  int
		wantLimit int
	}{
		{"", 1, DefaultPageSize},
		{"page=0&limit=0", 1, DefaultPageSize},
		{"page=-3&limit=-1", 1, DefaultPageSize},
		{"page=2&limit=25", 2, 25},
		{"page=7&limit=500", 7, MaxPageSize},
		{"page=abc&limit=xyz", 1, DefaultPageSize},
	}
	for _, tc := range cases {
		c := contextWithQuery(t, tc.query)
		page, limit := pageParams(c)
		assert.Equal(t, tc.wantPage, page, "query %q", tc.query)
		assert.Equal(t, tc.wantLimit, limit, "query %q", tc.query)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 5, TotalPages(41, 10))
}

func TestListResponseEnvelope(t *testing.T) {
	c := contextWithQuery(t, "page=3&limit=10")
	resp := listResponse(c, "alumnos", []string{"a", "b"}, 41)

	assert.Equal(t, true, resp["success"])
	assert.Equal(t, int64(41), resp["total"])
	assert.Equal(t, 5, resp["totalPages"])
	assert.Equal(t, 3, resp["page"])
	assert.Equal(t, 10, resp["limit"])
	assert.Equal(t, []string{"a", "b"}, resp["alumnos"])
}
