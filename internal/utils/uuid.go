package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// TokenGenerator produces opaque session tokens as random (version 4) UUIDs.
type TokenGenerator struct {
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

func (g *TokenGenerator) Generate() (string, error) {
	v4, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	return v4.String(), nil
}

// NewTraceID returns a fresh time-ordered id for request tracing.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
