package hasher_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"golibrary/internal/pkg/hasher"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHasher_HashAndVerify(t *testing.T) {
	h := hasher.New()

	t.Run("senha correta verifica", func(t *testing.T) {
		hash, salt, err := h.Hash("s3cret!")
		require.NoError(t, err)
		assert.Len(t, hash, hasher.HashSize)
		assert.Len(t, salt, hasher.SaltSize)
		assert.True(t, h.Verify("s3cret!", hash, salt))
	})

	t.Run("senha errada não verifica", func(t *testing.T) {
		hash, salt, err := h.Hash("s3cret!")
		require.NoError(t, err)
		assert.False(t, h.Verify("s3cret?", hash, salt))
		assert.False(t, h.Verify("", hash, salt))
	})

	t.Run("senha vazia é rejeitada", func(t *testing.T) {
		_, _, err := h.Hash("")
		assert.ErrorIs(t, err, hasher.ErrEmptyPassword)
	})
}

func TestHasher_FreshSaltPerHash(t *testing.T) {
	h := hasher.New()

	hash1, salt1, err := h.Hash("mesma-senha")
	require.NoError(t, err)
	hash2, salt2, err := h.Hash("mesma-senha")
	require.NoError(t, err)

	assert.False(t, bytes.Equal(salt1, salt2))
	assert.False(t, bytes.Equal(hash1, hash2))
	assert.False(t, h.Verify("mesma-senha", hash1, salt2))
}

// Uma alteração apenas no último byte precisa ser detectada: a comparação cobre o hash inteiro.
func TestHasher_ComparesFullLength(t *testing.T) {
	h := hasher.New()
	hash, salt, err := h.Hash("password1")
	require.NoError(t, err)

	for _, i := range []int{0, hasher.HashSize / 2, hasher.HashSize - 1} {
		tampered := bytes.Clone(hash)
		tampered[i] ^= 0x01
		assert.False(t, h.Verify("password1", tampered, salt), "byte %d alterado deveria falhar", i)
	}

	assert.False(t, h.Verify("password1", hash[:32], salt), "hash truncado deveria falhar")
	assert.False(t, h.Verify("password1", append(bytes.Clone(hash), 0x00), salt), "hash estendido deveria falhar")
	assert.False(t, h.Verify("password1", hash, nil))
}
