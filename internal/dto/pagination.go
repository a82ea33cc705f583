package dto

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/SidorenkoTatiana/foodgram-st/config"
)

const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// Page 分页响应（count/next/previous/results 结构）
type Page struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// ParsePageParams 解析分页参数 page 和 limit
func ParsePageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// NewPage 构建分页响应，next/previous 为完整 URL
func NewPage(c *gin.Context, count int64, page, limit int, results any) Page {
	p := Page{
		Count:   count,
		Results: results,
	}

	if int64(page*limit) < count {
		next := buildPageURL(c, page+1)
		p.Next = &next
	}
	if page > 1 {
		prev := buildPageURL(c, page-1)
		p.Previous = &prev
	}

	return p
}

// buildPageURL 基于当前请求构建指定页码的完整 URL
func buildPageURL(c *gin.Context, page int) string {
	query := url.Values{}
	for key, values := range c.Request.URL.Query() {
		for _, v := range values {
			query.Add(key, v)
		}
	}
	query.Set("page", strconv.Itoa(page))

	base := strings.TrimRight(config.Conf.Server.BaseURL, "/")
	return base + c.Request.URL.Path + "?" + query.Encode()
}
