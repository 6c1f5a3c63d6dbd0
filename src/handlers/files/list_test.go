package files

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/filebrowser/api/src/domain/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListHandler_OK(t *testing.T) {
	svc := new(MockFileService)
	svc.On("List", mock.Anything).Return(files.Success([]string{"a.txt", "image.gif", "c.pdf"}))
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `["a.txt","image.gif","c.pdf"]`, w.Body.String())
	svc.AssertExpectations(t)
}

func TestListHandler_Empty(t *testing.T) {
	svc := new(MockFileService)
	svc.On("List", mock.Anything).Return(files.Success([]string{}))
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListHandler_StoreUnavailable(t *testing.T) {
	svc := new(MockFileService)
	svc.On("List", mock.Anything).Return(files.FailureWith[[]string](files.KindStoreUnavailable, "storage unavailable: permission denied"))
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/files", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "storage unavailable: permission denied", w.Body.String())
}

func TestStatusForKind(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusForKind(files.KindNotFound))
	assert.Equal(t, http.StatusBadRequest, statusForKind(files.KindInvalidName))
	assert.Equal(t, http.StatusInternalServerError, statusForKind(files.KindStoreUnavailable))
	assert.Equal(t, http.StatusBadRequest, statusForKind(files.KindTooLarge))
	assert.Equal(t, http.StatusBadRequest, statusForKind(files.KindAlreadyExists))
}
