package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/sigkit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected environment.Environment
	}{
		{name: "production", input: "production", expected: environment.Production},
		{name: "prod alias", input: "prod", expected: environment.Production},
		{name: "uppercase with spaces", input: "  PRODUCTION ", expected: environment.Production},
		{name: "staging", input: "staging", expected: environment.Staging},
		{name: "stage alias", input: "stage", expected: environment.Staging},
		{name: "development", input: "development", expected: environment.Development},
		{name: "dev alias", input: "dev", expected: environment.Development},
		{name: "empty falls back to development", input: "", expected: environment.Development},
		{name: "unknown falls back to development", input: "qa", expected: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, environment.Parse(tt.input))
		})
	}
}

func TestEnvironmentPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Production.IsDevelopment())
	assert.True(t, environment.Staging.IsStaging())
	assert.True(t, environment.Development.IsDevelopment())
	assert.False(t, environment.Environment("").IsProduction())
	assert.Equal(t, "production", environment.Production.String())
}

func TestWithContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  environment.Environment
	}{
		{name: "development environment", env: environment.Development},
		{name: "production environment", env: environment.Production},
		{name: "staging environment", env: environment.Staging},
		{name: "custom environment", env: environment.Environment("custom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := environment.WithContext(context.Background(), tt.env)
			assert.Equal(t, tt.env, environment.FromContext(ctx))
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("context without environment", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	})

	t.Run("predicates read from context", func(t *testing.T) {
		t.Parallel()

		ctx := environment.WithContext(context.Background(), environment.Production)
		assert.True(t, environment.IsProduction(ctx))
		assert.False(t, environment.IsDevelopment(ctx))
	})
}
