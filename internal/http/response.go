package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Response is the standard envelope every endpoint except the legacy
// sppt group uses.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
	Links      *Links      `json:"links,omitempty"`
}

// Links carries the ready-made prev/next URLs of a search result page.
type Links struct {
	Prev string `json:"prev"`
	Next string `json:"next"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"has_next"`
	HasPrev bool  `json:"has_prev"`
}

// legacyResponse is the envelope the sppt group has always used and
// clients still depend on.
type legacyResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func ok(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

func created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Success: false,
		Message: message,
		Data:    gin.H{"status_code": status},
	})
}

func paginated(c *gin.Context, message string, data interface{}, total int64, page, limit int) {
	p := newPagination(total, page, limit)
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    &Meta{Pagination: &p},
	})
}

func newPagination(total int64, page, limit int) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1 && total > 0,
	}
}

func legacyOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, legacyResponse{Status: "success", Message: message, Data: data})
}

func legacyCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, legacyResponse{Status: "success", Message: message, Data: data})
}

func legacyFail(c *gin.Context, status int, message string) {
	c.JSON(status, legacyResponse{Status: "error", Message: message})
}

// pageParams reads ?page= and ?limit= with the API's defaults.
func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// searchLinks builds the prev/next URLs the legacy spop search returns.
func searchLinks(c *gin.Context, page, pages int) (prev, next string) {
	build := func(target int) string {
		query := c.Request.URL.Query()
		query.Set("page", strconv.Itoa(target))
		return fmt.Sprintf("%s?%s", c.Request.URL.Path, query.Encode())
	}
	if page > 1 {
		prev = build(page - 1)
	}
	if page < pages {
		next = build(page + 1)
	}
	return prev, next
}
