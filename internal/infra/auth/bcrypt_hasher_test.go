package auth

import (
	"testing"

	"quill/config"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func testConfigWithCost(cost int) *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{BcryptCost: cost}

	return cfg
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(testConfigWithCost(bcrypt.MinCost))

	password := "secret1"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_CheckMismatch(t *testing.T) {
	hasher := NewBcryptHasher(testConfigWithCost(bcrypt.MinCost))

	hash, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	// Wrong password
	assert.False(t, hasher.Check("secret2", hash))

	// Empty password
	assert.False(t, hasher.Check("", hash))

	// Malformed digest reports false, never panics or errors
	assert.False(t, hasher.Check("secret1", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Check("secret1", ""))
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	hasher := NewBcryptHasher(testConfigWithCost(6))

	hash, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_DefaultCostWhenUnconfigured(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	hasher := NewBcryptHasher(testConfigWithCost(bcrypt.MinCost))

	first, err := hasher.Hash("secret1")
	assert.NoError(t, err)
	second, err := hasher.Hash("secret1")
	assert.NoError(t, err)

	// bcrypt embeds a fresh salt per call
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}
