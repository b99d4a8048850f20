package environment_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docsynk/formrelay/pkg/environment"
)

func TestEnvironmentPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env    environment.Environment
		isProd bool
		isDev  bool
	}{
		{environment.Production, true, false},
		{environment.Environment("prod"), true, false},
		{environment.Development, false, true},
		{environment.Environment("dev"), false, true},
		{environment.Staging, false, false},
		{environment.Environment(""), false, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.env), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.isProd, tt.env.IsProduction())
			assert.Equal(t, tt.isDev, tt.env.IsDevelopment())
		})
	}
}

func TestContextRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := environment.WithContext(context.Background(), environment.Staging)
	assert.Equal(t, environment.Staging, environment.FromContext(ctx))

	assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	assert.Equal(t, environment.Environment(""), environment.FromContext(nil))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var seen environment.Environment
	handler := environment.Middleware(environment.Production)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = environment.FromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}),
	)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, environment.Production, seen)
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	ctx := environment.WithContext(context.Background(), environment.Development)
	attr, ok := extract(ctx)
	assert.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "development", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
