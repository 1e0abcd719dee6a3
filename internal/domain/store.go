package domain

// Store representa uma loja cadastrada no backend de comércio, com endereço
// hierárquico (província/cidade/distrito/vila) e geocoordenadas.
type Store struct {
	Id               string   `json:"Id"`
	Name             string   `json:"Name"`
	Provinces        string   `json:"Provinces"`
	Cities           string   `json:"Cities"`
	Districts        string   `json:"Districts"`
	Villages         *string  `json:"Villages"`
	Latitude         float64  `json:"Latitude"`
	Longitude        float64  `json:"Longitude"`
	Email            string   `json:"Email"`
	PhoneNumber      string   `json:"PhoneNumber"`
	OperationalHours string   `json:"OperationalHours"`
	ProductIds       []string `json:"ProductIds"`
	BundleIds        []string `json:"BundleIds"`
}

// CreateStoreRequest é o payload de criação de loja, validado na borda da API
type CreateStoreRequest struct {
	Name             string  `json:"Name" validate:"required"`
	Provinces        string  `json:"Provinces" validate:"required"`
	Cities           string  `json:"Cities" validate:"required"`
	Districts        string  `json:"Districts" validate:"required"`
	Villages         *string `json:"Villages"`
	Latitude         float64 `json:"Latitude" validate:"gte=-90,lte=90"`
	Longitude        float64 `json:"Longitude" validate:"gte=-180,lte=180"`
	Email            string  `json:"Email" validate:"omitempty,email"`
	PhoneNumber      string  `json:"PhoneNumber"`
	OperationalHours string  `json:"OperationalHours"`
}
