package hasher

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"errors"
	"fmt"
)

const (
	// SaltSize é o tamanho da chave HMAC gerada por senha (tamanho de bloco do SHA-512).
	SaltSize = 128
	// HashSize é o tamanho do digest HMAC-SHA512.
	HashSize = sha512.Size
)

// ErrEmptyPassword é retornado ao tentar gerar hash de uma senha vazia.
var ErrEmptyPassword = errors.New("a senha não pode ser vazia")

// Hasher gera e verifica hashes de senha com HMAC-SHA512, usando o salt como chave.
// Hash e salt são armazenados separadamente no registro do usuário.
type Hasher struct{}

// New cria um novo Hasher.
func New() *Hasher {
	return &Hasher{}
}

// Hash gera um salt aleatório novo e devolve HMAC-SHA512(salt, senha) junto com o salt.
func (h *Hasher) Hash(password string) (hash, salt []byte, err error) {
	if password == "" {
		return nil, nil, ErrEmptyPassword
	}

	salt = make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("falha ao gerar salt: %w", err)
	}

	return compute(password, salt), salt, nil
}

// Verify recalcula o hash com o salt armazenado e compara todos os bytes em tempo constante.
func (h *Hasher) Verify(password string, hash, salt []byte) bool {
	if len(hash) != HashSize || len(salt) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(compute(password, salt), hash) == 1
}

func compute(password string, salt []byte) []byte {
	mac := hmac.New(sha512.New, salt)
	mac.Write([]byte(password))
	return mac.Sum(nil)
}
