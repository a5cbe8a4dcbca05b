package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uakit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected environment.Environment
	}{
		{"production", environment.Production},
		{"prod", environment.Production},
		{" PROD ", environment.Production},
		{"staging", environment.Staging},
		{"stage", environment.Staging},
		{"development", environment.Development},
		{"dev", environment.Development},
		{"", environment.Development},
		{"qa", environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, environment.Parse(tt.input))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := environment.WithContext(context.Background(), environment.Production)
		assert.Equal(t, environment.Production, environment.FromContext(ctx))
		assert.True(t, environment.IsProduction(ctx))
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, environment.FromContext(context.Background()))
		assert.False(t, environment.IsProduction(context.Background()))
	})
}

func TestMiddlewareAndExtractor(t *testing.T) {
	t.Parallel()

	var attrValue string
	extract := environment.LoggerExtractor()
	handler := environment.Middleware(environment.Staging)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attr, ok := extract(r.Context())
		require.True(t, ok)
		attrValue = attr.Value.String()
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "staging", attrValue)

	_, ok := extract(context.Background())
	assert.False(t, ok)
}
