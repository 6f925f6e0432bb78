package dto

import "github.com/present-lee/module-6/internal/optional"

type CreateCategoryRequest struct {
	Name  string  `json:"name"`
	Order *int    `json:"order"`
	Color *string `json:"color"`
}

type UpdateCategoryRequest struct {
	Name  optional.Field[string] `json:"name"`
	Order optional.Field[int]    `json:"order"`
	Color optional.Field[string] `json:"color"`
}

type ReorderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

type ReorderCategoriesRequest struct {
	Items []ReorderItem `json:"items"`
}
