package files

import (
	"context"
	"io"

	"github.com/filebrowser/api/src/domain/files"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

// MockFileService is a testify mock of content.FileService
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) List(ctx context.Context) files.Result[[]string] {
	args := m.Called(ctx)
	return args.Get(0).(files.Result[[]string])
}

func (m *MockFileService) Read(ctx context.Context, requestedName string) files.Result[files.FileRecord] {
	args := m.Called(ctx, requestedName)
	return args.Get(0).(files.Result[files.FileRecord])
}

func (m *MockFileService) ReadAsEnvelope(ctx context.Context, requestedName string) files.Result[files.Envelope] {
	args := m.Called(ctx, requestedName)
	return args.Get(0).(files.Result[files.Envelope])
}

func (m *MockFileService) Write(ctx context.Context, content io.Reader, requestedName string, sizeBytes int64) files.Result[struct{}] {
	args := m.Called(ctx, content, requestedName, sizeBytes)
	return args.Get(0).(files.Result[struct{}])
}

func (m *MockFileService) MaxFileSize() int64 {
	args := m.Called()
	return args.Get(0).(int64)
}

func newTestRouter(svc *MockFileService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	router := gin.New()
	NewHandler(svc, logger).RegisterRoutes(router)
	return router
}
