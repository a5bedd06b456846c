package domain

import "time"

// Nomes das roles semeadas pela migração.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Role é um papel atribuído a usuários através da tabela user_roles.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User representa a entidade do usuário no sistema.
// Hash, salt e refresh token nunca são serializados.
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash []byte     `json:"-"`
	PasswordSalt []byte     `json:"-"`
	RefreshToken string     `json:"-"`
	TokenCreated *time.Time `json:"-"`
	TokenExpires *time.Time `json:"-"`
	Roles        []Role     `json:"roles"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PrimaryRole devolve o nome da primeira role do usuário, usado como claim do access token.
// O repositório carrega as roles ordenadas por nome.
func (u User) PrimaryRole() string {
	if len(u.Roles) == 0 {
		return ""
	}
	return u.Roles[0].Name
}

// RegisterInput representa o payload de entrada para o registro.
type RegisterInput struct {
	Username string `json:"username" validate:"required,max=100" example:"alice"`
	Password string `json:"password" validate:"required,min=6" example:"s3cret!"`
	Role     string `json:"role" validate:"required,max=50" example:"User"`
}

// UserResponse é a representação pública de um usuário recém-registrado.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
