package domain

import "time"

// Author representa um autor. Remover um autor remove também os seus livros.
type Author struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name" example:"Alan"`
	LastName    string    `json:"last_name" example:"Donovan"`
	DateOfBirth time.Time `json:"date_of_birth" example:"1970-01-01T00:00:00Z"`
	Country     string    `json:"country" example:"EUA"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthorInput é o payload de criação/atualização de um autor.
type AuthorInput struct {
	FirstName   string    `json:"first_name" validate:"required,max=100"`
	LastName    string    `json:"last_name" validate:"required,max=100"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required,pastdate"`
	Country     string    `json:"country" validate:"required,max=100"`
}
