package utils

import "github.com/gofiber/fiber/v2"

// Pagination is the metadata block returned alongside a paginated list.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// PageParams reads page/limit query parameters with sane defaults.
func PageParams(c *fiber.Ctx) (page, limit int) {
	page = c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
