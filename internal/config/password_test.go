package config

import (
	"strings"
	"testing"
)

func TestNewPasswordConfig_Defaults(t *testing.T) {
	config, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}
	if config.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", config.BcryptCost)
	}
}

func TestNewPasswordConfig_CostFromEnv(t *testing.T) {
	t.Setenv("BCRYPT_COST", "10")
	config, err := NewPasswordConfig()
	if err != nil {
		t.Fatalf("NewPasswordConfig() error = %v", err)
	}
	if config.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", config.BcryptCost)
	}
}

func TestNewPasswordConfig_InvalidCost(t *testing.T) {
	tests := []struct {
		name string
		cost string
	}{
		{"non-numeric", "abc"},
		{"too low", "9"},
		{"too high", "15"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("BCRYPT_COST", tt.cost)
			if _, err := NewPasswordConfig(); err == nil {
				t.Error("NewPasswordConfig() expected error, got nil")
			}
		})
	}
}

func TestPasswordConfig_HashAndVerify(t *testing.T) {
	config := &PasswordConfig{BcryptCost: 10}

	hash, err := config.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("hash does not look like bcrypt: %s", hash)
	}

	if !config.VerifyPassword("correct horse battery staple", hash) {
		t.Error("VerifyPassword() = false for correct password")
	}
	if config.VerifyPassword("wrong password", hash) {
		t.Error("VerifyPassword() = true for wrong password")
	}
}

func TestPasswordConfig_VerifyPassword_MalformedHash(t *testing.T) {
	config := &PasswordConfig{BcryptCost: 10}
	if config.VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Error("VerifyPassword() = true for malformed hash")
	}
}
