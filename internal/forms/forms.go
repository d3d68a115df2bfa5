// Package forms defines the typed, schema-validated input forms. Validation
// failures surface as a single joined pt-BR message, the same shape the
// backend's own field-error arrays collapse into.
package forms

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Register struct {
	Email             string `form:"email" validate:"required,email"`
	Password          string `form:"password" validate:"required,min=6"`
	FullName          string `form:"full_name" validate:"required,min=3"`
	CPF               string `form:"cpf" validate:"required,min=11"`
	Phone             string `form:"phone" validate:"required,min=10"`
	AddressStreet     string `form:"address_street" validate:"required,min=3"`
	AddressNumber     string `form:"address_number" validate:"required"`
	AddressComplement string `form:"address_complement"`
	AddressZip        string `form:"address_zip" validate:"required,min=8"`
	AddressCity       string `form:"address_city" validate:"required,min=2"`
	AddressState      string `form:"address_state" validate:"required,len=2"`
}

type Profile struct {
	FullName          string `form:"full_name" validate:"omitempty,min=3"`
	Phone             string `form:"phone" validate:"omitempty,min=10"`
	AddressStreet     string `form:"address_street" validate:"omitempty,min=3"`
	AddressNumber     string `form:"address_number"`
	AddressComplement string `form:"address_complement"`
	AddressZip        string `form:"address_zip" validate:"omitempty,min=8"`
	AddressCity       string `form:"address_city" validate:"omitempty,min=2"`
	AddressState      string `form:"address_state" validate:"omitempty,len=2"`
}

type PasswordChange struct {
	CurrentPassword string `form:"current_password" validate:"required"`
	NewPassword     string `form:"new_password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type Banner struct {
	Title    string `form:"title" validate:"required,min=3"`
	ImageURL string `form:"image_url" validate:"required,url"`
	LinkURL  string `form:"link_url" validate:"omitempty,url"`
	Position int    `form:"position" validate:"gte=0"`
	IsActive bool   `form:"is_active"`
}

type Category struct {
	Title       string `form:"title" validate:"required,min=2"`
	Description string `form:"description"`
	ImageURL    string `form:"image_url" validate:"omitempty,url"`
}

type Product struct {
	Name        string  `form:"name" validate:"required,min=2"`
	Price       float64 `form:"price" validate:"required,gt=0"`
	CategoryID  int     `form:"category_id" validate:"required,gt=0"`
	ImageURL    string  `form:"image_url" validate:"omitempty,url"`
	Description string  `form:"description"`
}

type Coupon struct {
	Code string `form:"code" validate:"required,min=3"`
}

// Check validates v and collapses every field error into one readable
// message, joined with "; " like the backend's validation arrays.
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// message mirrors the wording of the original form schemas.
func message(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Email":
		return "E-mail inválido."
	case "Password", "NewPassword":
		return "A senha deve ter pelo menos 6 caracteres."
	case "CurrentPassword":
		return "A senha atual é obrigatória."
	case "ConfirmPassword":
		return "As senhas não coincidem."
	case "FullName":
		return "Nome completo é obrigatório."
	case "CPF":
		return "CPF inválido."
	case "Phone":
		return "Telefone inválido."
	case "AddressStreet":
		return "Endereço é obrigatório."
	case "AddressNumber":
		return "Número é obrigatório."
	case "AddressZip":
		return "CEP inválido."
	case "AddressCity":
		return "Cidade é obrigatória."
	case "AddressState":
		return "Use a sigla do estado (ex: SP)."
	case "Position":
		return "A posição não pode ser negativa."
	case "Price":
		return "O preço deve ser maior que zero."
	case "CategoryID":
		return "Selecione uma categoria."
	case "Code":
		return "Informe um código de cupom."
	}
	switch fe.Tag() {
	case "required":
		return "O campo " + strings.ToLower(fe.Field()) + " é obrigatório."
	case "url":
		return "Por favor, insira uma URL válida."
	case "min":
		return "O campo " + strings.ToLower(fe.Field()) + " é muito curto."
	}
	return "O campo " + strings.ToLower(fe.Field()) + " é inválido."
}
