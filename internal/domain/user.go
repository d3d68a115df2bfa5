package domain

// User mirrors the backend profile payload. The backend owns the record;
// this process only displays and edits copies of it.
type User struct {
	ID                int     `json:"id"`
	Email             string  `json:"email"`
	FullName          string  `json:"full_name"`
	CPF               string  `json:"cpf"`
	Phone             string  `json:"phone"`
	AddressStreet     string  `json:"address_street"`
	AddressNumber     string  `json:"address_number"`
	AddressComplement *string `json:"address_complement"`
	AddressZip        string  `json:"address_zip"`
	AddressCity       string  `json:"address_city"`
	AddressState      string  `json:"address_state"`
	IsActive          bool    `json:"is_active"`
	IsSuperuser       bool    `json:"is_superuser"`
}
