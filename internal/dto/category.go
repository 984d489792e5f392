package dto

import (
	"budget-tracker/internal/models"

	"github.com/google/uuid"
)

// CategoryRequest is the body of a create or full update.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Type string `json:"type" validate:"required,category_type"`
}

// CategoryPatchRequest is the body of a partial update.
type CategoryPatchRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=100"`
	Type *string `json:"type" validate:"omitempty,category_type"`
}

// CategoryInput carries the category fields being written. Nil fields are
// left unchanged on update.
type CategoryInput struct {
	Name *string
	Type *string
}

func (r CategoryRequest) Input() CategoryInput {
	return CategoryInput{Name: &r.Name, Type: &r.Type}
}

func (r CategoryPatchRequest) Input() CategoryInput {
	return CategoryInput{Name: r.Name, Type: r.Type}
}

// CategoryQuery holds the list filters accepted on GET /categories.
type CategoryQuery struct {
	Name string `query:"name"`
	Type string `query:"type" validate:"omitempty,category_type"`
}

func (q CategoryQuery) Filters() models.CategoryFilters {
	return models.CategoryFilters{Name: q.Name, Type: q.Type}
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Type: c.Type}
}

func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, NewCategoryResponse(&categories[i]))
	}
	return out
}
