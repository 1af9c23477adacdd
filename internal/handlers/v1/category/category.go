package category

import (
	"github.com/carson-networks/expense-server/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID   int64  `json:"id" doc:"Category ID"`
	Name string `json:"name" doc:"Unique category name"`
}

// CategoryBody is the request body for creating or updating a category.
// Unknown fields are ignored.
type CategoryBody struct {
	_    struct{} `additionalProperties:"true"`
	Name *string  `json:"name,omitempty" doc:"Category name, at most 80 characters"`
}

// IDPath is the path parameter addressing one category.
type IDPath struct {
	ID string `path:"id" doc:"Category ID"`
}

const tags = "Categories"

func fromService(c *service.Category) Category {
	return Category{ID: c.ID, Name: c.Name}
}
