package model

import (
	"time"

	"gorm.io/gorm"

	"golibrary/internal/domain"
)

// AuthorModel é o registro gorm da tabela authors.
type AuthorModel struct {
	ID          string    `gorm:"type:uuid;primaryKey"`
	FirstName   string    `gorm:"size:100;not null"`
	LastName    string    `gorm:"size:100;not null"`
	DateOfBirth time.Time `gorm:"not null"`
	Country     string    `gorm:"size:100;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (AuthorModel) TableName() string { return "authors" }

// BookModel é o registro gorm da tabela books.
type BookModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	ISBN         string `gorm:"column:isbn;size:13;uniqueIndex;not null"`
	Title        string `gorm:"size:255;not null"`
	Genre        string `gorm:"size:100;not null"`
	Description  string `gorm:"size:500"`
	ImageURL     string `gorm:"column:image_url;size:2048"`
	BorrowedDate *time.Time
	DueDate      *time.Time
	AuthorID     string `gorm:"type:uuid;index;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (BookModel) TableName() string { return "books" }

// RoleModel é o registro gorm da tabela roles.
type RoleModel struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Name string `gorm:"size:50;uniqueIndex;not null"`
}

func (RoleModel) TableName() string { return "roles" }

// UserModel é o registro gorm da tabela users. As roles vêm exclusivamente de user_roles.
type UserModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Username     string  `gorm:"size:100;uniqueIndex;not null"`
	PasswordHash []byte  `gorm:"not null"`
	PasswordSalt []byte  `gorm:"not null"`
	RefreshToken *string `gorm:"uniqueIndex"`
	TokenCreated *time.Time
	TokenExpires *time.Time
	Roles        []RoleModel `gorm:"many2many:user_roles;joinForeignKey:UserID;joinReferences:RoleID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (UserModel) TableName() string { return "users" }

// AutoMigrate cria o schema a partir dos modelos. Usado apenas em testes com sqlite;
// em produção o schema vem das migrações do goose.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&AuthorModel{}, &BookModel{}, &RoleModel{}, &UserModel{})
}

// --- Conversões ---

func AuthorFromDomain(a domain.Author) AuthorModel {
	return AuthorModel{
		ID:          a.ID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		DateOfBirth: a.DateOfBirth,
		Country:     a.Country,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (m AuthorModel) ToDomain() domain.Author {
	return domain.Author{
		ID:          m.ID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		DateOfBirth: m.DateOfBirth,
		Country:     m.Country,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func BookFromDomain(b domain.Book) BookModel {
	return BookModel{
		ID:           b.ID,
		ISBN:         b.ISBN,
		Title:        b.Title,
		Genre:        b.Genre,
		Description:  b.Description,
		ImageURL:     b.ImageURL,
		BorrowedDate: b.BorrowedDate,
		DueDate:      b.DueDate,
		AuthorID:     b.AuthorID,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (m BookModel) ToDomain() domain.Book {
	return domain.Book{
		ID:           m.ID,
		ISBN:         m.ISBN,
		Title:        m.Title,
		Genre:        m.Genre,
		Description:  m.Description,
		ImageURL:     m.ImageURL,
		BorrowedDate: m.BorrowedDate,
		DueDate:      m.DueDate,
		AuthorID:     m.AuthorID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (m RoleModel) ToDomain() domain.Role {
	return domain.Role{ID: m.ID, Name: m.Name}
}

func UserFromDomain(u domain.User) UserModel {
	roles := make([]RoleModel, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, RoleModel{ID: r.ID, Name: r.Name})
	}
	var refresh *string
	if u.RefreshToken != "" {
		t := u.RefreshToken
		refresh = &t
	}
	return UserModel{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		PasswordSalt: u.PasswordSalt,
		RefreshToken: refresh,
		TokenCreated: u.TokenCreated,
		TokenExpires: u.TokenExpires,
		Roles:        roles,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m UserModel) ToDomain() domain.User {
	roles := make([]domain.Role, 0, len(m.Roles))
	for _, r := range m.Roles {
		roles = append(roles, r.ToDomain())
	}
	u := domain.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		PasswordSalt: m.PasswordSalt,
		TokenCreated: m.TokenCreated,
		TokenExpires: m.TokenExpires,
		Roles:        roles,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.RefreshToken != nil {
		u.RefreshToken = *m.RefreshToken
	}
	return u
}
