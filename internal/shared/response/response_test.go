package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(write func(c *gin.Context)) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	write(c)
	return w
}

func TestOKOmitsEmptyEnvelopeFields(t *testing.T) {
	w := record(func(c *gin.Context) {
		OK(c, http.StatusOK, gin.H{"employee_id": "E001"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"employee_id":"E001"}}`, w.Body.String())
}

func TestListCarriesBothCounts(t *testing.T) {
	w := record(func(c *gin.Context) {
		List(c, []string{"a"}, 9, 1)
	})

	assert.JSONEq(t, `{"success":true,"data":["a"],"total":9,"filtered":1}`, w.Body.String())
}

func TestListKeepsZeroCounts(t *testing.T) {
	// total and filtered are pointers so zero still serializes.
	w := record(func(c *gin.Context) {
		List(c, []string{}, 0, 0)
	})

	assert.JSONEq(t, `{"success":true,"data":[],"total":0,"filtered":0}`, w.Body.String())
}

func TestValidationFailedShape(t *testing.T) {
	w := record(func(c *gin.Context) {
		ValidationFailed(c, map[string]string{"email": "Email address is required."})
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t,
		`{"success":false,"error":"Validation failed.","fields":{"email":"Email address is required."}}`,
		w.Body.String())
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		write  func(c *gin.Context)
		status int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "nope") }, http.StatusBadRequest},
		{"not found", func(c *gin.Context) { NotFound(c, "nope") }, http.StatusNotFound},
		{"conflict", func(c *gin.Context) { Conflict(c, "nope") }, http.StatusConflict},
		{"unavailable", func(c *gin.Context) { ServiceUnavailable(c, "nope") }, http.StatusServiceUnavailable},
		{"internal", func(c *gin.Context) { InternalServerError(c, "nope") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(tt.write)
			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, `{"success":false,"error":"nope"}`, w.Body.String())
		})
	}
}
