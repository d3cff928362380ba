package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"lumensite/internal/routes"
)

func TestHandlerRendersBoundPage(t *testing.T) {
	b := routes.Table()[0]
	rec := httptest.NewRecorder()

	Handler(b, zap.NewNop())(rec, httptest.NewRequest(http.MethodGet, b.Path, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "<main>")
}

func TestHandlerUnknownKind(t *testing.T) {
	b := routes.Binding{Path: "/broken", Kind: routes.PageKind(99), Title: "broken"}
	rec := httptest.NewRecorder()

	Handler(b, zap.NewNop())(rec, httptest.NewRequest(http.MethodGet, b.Path, nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
