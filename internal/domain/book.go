package domain

import "time"

// Book representa um livro do acervo. O ISBN é a chave de negócio, distinta do ID interno.
// BorrowedDate e DueDate estão ambos presentes (emprestado) ou ambos ausentes.
type Book struct {
	ID           string     `json:"id" example:"0b9c2a64-6f3e-4d8e-9d2f-6a1b2c3d4e5f"`
	ISBN         string     `json:"isbn" example:"9780134190440"`
	Title        string     `json:"title" example:"The Go Programming Language"`
	Genre        string     `json:"genre" example:"Programação"`
	Description  string     `json:"description,omitempty"`
	ImageURL     string     `json:"image_url,omitempty"`
	BorrowedDate *time.Time `json:"borrowed_date,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	AuthorID     string     `json:"author_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsBorrowed informa se o livro está emprestado.
func (b Book) IsBorrowed() bool {
	return b.BorrowedDate != nil && b.DueDate != nil
}

// BookInput é o payload de criação/atualização de um livro.
type BookInput struct {
	ISBN        string `json:"isbn" validate:"required,min=10,max=13" example:"9780134190440"`
	Title       string `json:"title" validate:"required,max=255" example:"The Go Programming Language"`
	Genre       string `json:"genre" validate:"required,max=100" example:"Programação"`
	Description string `json:"description" validate:"max=500"`
	AuthorID    string `json:"author_id" validate:"required,uuid"`
}

// BorrowInput é o payload de empréstimo de um livro.
type BorrowInput struct {
	DueDate time.Time `json:"due_date" validate:"required" example:"2026-11-01T00:00:00Z"`
}

// ImageInput é o payload de associação de imagem a um livro.
type ImageInput struct {
	ImageURL string `json:"image_url" validate:"required,url,max=2048" example:"https://covers.example.com/9780134190440.jpg"`
}
