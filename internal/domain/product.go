package domain

// Product é um produto do catálogo
type Product struct {
	Id          string   `json:"Id"`
	Name        string   `json:"Name"`
	Description string   `json:"Description"`
	Price       float64  `json:"Price"`
	Stock       int      `json:"Stock"`
	IsActive    bool     `json:"IsActive"`
	ImageUrl    *string  `json:"ImageUrl"`
	CategoryIds []string `json:"CategoryIds"`
}

// CreateProductRequest é o payload de criação de produto
type CreateProductRequest struct {
	Name        string  `json:"Name" validate:"required"`
	Description string  `json:"Description"`
	Price       float64 `json:"Price" validate:"gte=0"`
	Stock       int     `json:"Stock" validate:"gte=0"`
	ImageUrl    *string `json:"ImageUrl" validate:"omitempty,url"`
}

// UpdateProductRequest é o payload de atualização de produto; campos nulos
// mantêm o valor atual no upstream
type UpdateProductRequest struct {
	Id          string   `json:"Id" validate:"required"`
	Name        *string  `json:"Name"`
	Description *string  `json:"Description"`
	Price       *float64 `json:"Price" validate:"omitempty,gte=0"`
	Stock       *int     `json:"Stock" validate:"omitempty,gte=0"`
	IsActive    *bool    `json:"IsActive"`
	ImageUrl    *string  `json:"ImageUrl" validate:"omitempty,url"`
}

// Category agrupa produtos do catálogo
type Category struct {
	Id         string   `json:"Id"`
	Name       string   `json:"Name"`
	ProductIds []string `json:"ProductIds"`
}

// CreateCategoryRequest é o payload de criação de categoria
type CreateCategoryRequest struct {
	Name string `json:"Name" validate:"required"`
}
