package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type order struct {
	ID    uint    `json:"id"`
	Total float64 `json:"total" validate:"required,gt=0"`
	Email string  `json:"email" validate:"omitempty,email"`
	Note  string  `json:"-"`
}

type orderTransformer struct{}

func (orderTransformer) Transform(o order) map[string]any {
	return map[string]any{"id": o.ID, "total": o.Total}
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, ErrorResponse(rec, "Not authenticated.", http.StatusUnauthorized))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"error": "Not authenticated.", "code": float64(401)}, decode(t, rec))
}

func TestShowAll(t *testing.T) {
	tests := []struct {
		name  string
		items []order
		want  string
	}{
		{name: "empty", items: nil, want: `{"data":[]}`},
		{name: "items", items: []order{{ID: 1, Total: 9.5}, {ID: 2, Total: 3}}, want: `{"data":[{"id":1,"total":9.5},{"id":2,"total":3}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			require.NoError(t, ShowAll(rec, tt.items, orderTransformer{}, http.StatusOK))
			assert.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestShowOne(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, ShowOne(rec, order{ID: 4, Total: 1}, orderTransformer{}, http.StatusCreated))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":4,"total":1}}`, rec.Body.String())
}

func TestShowMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	require.NoError(t, ShowMessage(rec, "deleted", http.StatusAccepted))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.JSONEq(t, `{"data":"deleted","code":200}`, rec.Body.String())
}

func TestBind(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		var o order
		r := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"total": 12.5, "email": "a@b.co"}`))
		require.NoError(t, Bind(r, &o))
		assert.Equal(t, 12.5, o.Total)
	})

	t.Run("validation failure uses json names", func(t *testing.T) {
		var o order
		r := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"email": "nope"}`))
		err := Bind(r, &o)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		fields := []string{}
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
		assert.ElementsMatch(t, []string{"total:required", "email:email"}, fields)
	})

	t.Run("malformed json", func(t *testing.T) {
		var o order
		r := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"total":`))
		err := Bind(r, &o)

		var de *DecodeError
		require.True(t, errors.As(err, &de))
	})

	t.Run("non-struct target", func(t *testing.T) {
		var m map[string]any
		r := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(`{"a": 1}`))
		require.NoError(t, Bind(r, &m))
		assert.Equal(t, float64(1), m["a"])
	})
}
