package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"advanced-ai/internal/web"
)

func TestShellHandler_Serve(t *testing.T) {
	h := NewShellHandler(web.DefaultShellData())

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Serve(rr, httptest.NewRequest(method, "/", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), "/static/app.js")
		})
	}
}
