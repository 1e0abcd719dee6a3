package domain

// Driver é um entregador disponível para atribuição a transações
type Driver struct {
	Id            string  `json:"Id"`
	FullName      string  `json:"FullName"`
	Email         string  `json:"Email"`
	PhoneNumber   string  `json:"PhoneNumber"`
	LicenseNumber *string `json:"LicenseNumber"`
	VehicleInfo   *string `json:"VehicleInfo"`
	ImageUrl      *string `json:"ImageUrl"`
}

// Customer é o perfil de um cliente do comércio; quando o perfil pertence a um
// entregador, LicenseNumber/VehicleInfo/DriverId vêm preenchidos
type Customer struct {
	Id            string  `json:"Id"`
	UserId        string  `json:"UserId"`
	FullName      string  `json:"FullName"`
	Email         string  `json:"Email"`
	PhoneNumber   string  `json:"PhoneNumber"`
	Address       string  `json:"Address"`
	ImageUrl      string  `json:"ImageUrl"`
	LicenseNumber *string `json:"LicenseNumber"`
	VehicleInfo   *string `json:"VehicleInfo"`
	Role          int     `json:"Role"`
	DriverId      *string `json:"DriverId"`
}
