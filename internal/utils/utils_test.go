package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type payload struct {
	Name  string `json:"name" binding:"required"`
	Count *int   `json:"count" binding:"required"`
}

func newContext(body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestBindAndValidate(t *testing.T) {
	c, _ := newContext(`{"name":"x","count":0}`)
	var p payload
	require.True(t, BindAndValidate(c, &p))
	assert.Equal(t, "x", p.Name)
	require.NotNil(t, p.Count)
	assert.Equal(t, 0, *p.Count)

	c, w := newContext(`{"name":"x"}`)
	p = payload{}
	assert.False(t, BindAndValidate(c, &p))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Contains(t, resp.Error, "Validation failed")
	assert.Contains(t, resp.Error, "Count")

	c, w = newContext(`{not json`)
	p = payload{}
	assert.False(t, BindAndValidate(c, &p))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Error, "Invalid request payload")
}

func TestParseIDParam(t *testing.T) {
	c, _ := newContext("")
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := ParseIDParam(c, "id")
	assert.True(t, ok)
	assert.EqualValues(t, 42, id)

	for _, bad := range []string{"abc", "0", "-1", ""} {
		c, w := newContext("")
		c.Params = gin.Params{{Key: "id", Value: bad}}
		_, ok := ParseIDParam(c, "id")
		assert.False(t, ok, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestErrorHelpers(t *testing.T) {
	c, w := newContext("")
	Unauthorized(c, "nope")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.True(t, c.IsAborted())
	resp := decodeError(t, w)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
	assert.Equal(t, "nope", resp.Error)
}

func TestFlexInt(t *testing.T) {
	type body struct {
		Price *FlexInt `json:"price" binding:"required"`
	}

	for in, want := range map[string]int{
		`{"price":300}`:     300,
		`{"price":"300"}`:   300,
		`{"price":" 42 "}`:  42,
		`{"price":0}`:       0,
		`{"price":"-7"}`:    -7,
		`{"price":300.0}`:   300,
		`{"price":"250.0"}`: 250,
	} {
		var b body
		require.NoError(t, json.Unmarshal([]byte(in), &b), in)
		require.NotNil(t, b.Price, in)
		assert.Equal(t, want, b.Price.Int(), in)
	}

	for _, in := range []string{`{"price":"expensive"}`, `{"price":12.5}`, `{"price":true}`, `{"price":""}`, `{"price":1e12}`} {
		var b body
		assert.Error(t, json.Unmarshal([]byte(in), &b), in)
	}

	c, w := newContext(`{"price":"abc"}`)
	var b body
	assert.False(t, BindAndValidate(c, &b))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c, w = newContext(`{"price":null}`)
	b = body{}
	assert.False(t, BindAndValidate(c, &b))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
