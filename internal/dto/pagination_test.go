package dto

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SidorenkoTatiana/foodgram-st/config"
)

func newTestContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c
}

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantPage  int
		wantLimit int
	}{
		{
			name:      "默认分页参数",
			target:    "/api/recipes",
			wantPage:  1,
			wantLimit: DefaultPageSize,
		},
		{
			name:      "指定页码和数量",
			target:    "/api/recipes?page=3&limit=10",
			wantPage:  3,
			wantLimit: 10,
		},
		{
			name:      "页码小于1回退到1",
			target:    "/api/recipes?page=0",
			wantPage:  1,
			wantLimit: DefaultPageSize,
		},
		{
			name:      "超过上限截断到最大值",
			target:    "/api/recipes?limit=500",
			wantPage:  1,
			wantLimit: MaxPageSize,
		},
		{
			name:      "等于上限不截断",
			target:    "/api/recipes?limit=100",
			wantPage:  1,
			wantLimit: MaxPageSize,
		},
		{
			name:      "非法参数回退到默认值",
			target:    "/api/recipes?page=abc&limit=xyz",
			wantPage:  1,
			wantLimit: DefaultPageSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t, tt.target)
			page, limit := ParsePageParams(c)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewPage(t *testing.T) {
	config.Conf = &config.AppConfig{
		Server: config.ServerConfig{BaseURL: "http://localhost:8080"},
	}

	t.Run("中间页有上一页和下一页", func(t *testing.T) {
		c := newTestContext(t, "/api/recipes?page=2&limit=6")

		p := NewPage(c, 20, 2, 6, []int{1, 2, 3})

		assert.Equal(t, int64(20), p.Count)
		assert.NotNil(t, p.Next)
		assert.Equal(t, "http://localhost:8080/api/recipes?limit=6&page=3", *p.Next)
		assert.NotNil(t, p.Previous)
		assert.Equal(t, "http://localhost:8080/api/recipes?limit=6&page=1", *p.Previous)
	})

	t.Run("首页没有上一页", func(t *testing.T) {
		c := newTestContext(t, "/api/recipes")

		p := NewPage(c, 20, 1, 6, nil)

		assert.NotNil(t, p.Next)
		assert.Nil(t, p.Previous)
	})

	t.Run("末页没有下一页", func(t *testing.T) {
		c := newTestContext(t, "/api/recipes?page=4&limit=6")

		p := NewPage(c, 20, 4, 6, nil)

		assert.Nil(t, p.Next)
		assert.NotNil(t, p.Previous)
	})

	t.Run("单页没有前后页", func(t *testing.T) {
		c := newTestContext(t, "/api/recipes")

		p := NewPage(c, 3, 1, 6, nil)

		assert.Nil(t, p.Next)
		assert.Nil(t, p.Previous)
	})

	t.Run("保留其他查询参数", func(t *testing.T) {
		c := newTestContext(t, "/api/recipes?author=7&page=1")

		p := NewPage(c, 20, 1, 6, nil)

		assert.NotNil(t, p.Next)
		assert.Equal(t, "http://localhost:8080/api/recipes?author=7&page=2", *p.Next)
	})
}
