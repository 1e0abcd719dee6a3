package domain

import "time"

// BundleItem é uma linha de composição de um bundle
type BundleItem struct {
	ProductId string `json:"ProductId"`
	Quantity  int    `json:"Quantity"`
}

// Bundle é um pacote de produtos vendido com desconto dentro de uma janela de
// validade. Os totais (preço original, preço com desconto e economia) são
// derivados pelo upstream a partir dos itens.
type Bundle struct {
	Id                 string       `json:"Id"`
	Name               string       `json:"Name"`
	DiscountPercentage float64      `json:"DiscountPercentage"`
	StartDate          time.Time    `json:"StartDate"`
	EndDate            time.Time    `json:"EndDate"`
	Items              []BundleItem `json:"Items"`
	OriginalPrice      float64      `json:"OriginalPrice"`
	DiscountedPrice    float64      `json:"DiscountedPrice"`
	Savings            float64      `json:"Savings"`
	ImageUrl           *string      `json:"ImageUrl"`
}

// IsActiveAt indica se o bundle está dentro da janela de validade
func (b *Bundle) IsActiveAt(t time.Time) bool {
	return !t.Before(b.StartDate) && !t.After(b.EndDate)
}

// CreateBundleRequest é o payload de criação de bundle
type CreateBundleRequest struct {
	Name               string       `json:"Name" validate:"required"`
	DiscountPercentage float64      `json:"DiscountPercentage" validate:"gt=0,lte=100"`
	StartDate          time.Time    `json:"StartDate" validate:"required"`
	EndDate            time.Time    `json:"EndDate" validate:"required,gtfield=StartDate"`
	Items              []BundleItem `json:"Items" validate:"required,min=1,dive"`
	ImageUrl           *string      `json:"ImageUrl" validate:"omitempty,url"`
}
