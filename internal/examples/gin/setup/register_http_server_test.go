package setup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	lambdaioc "github.com/Coder-Spirit/lambda-ioc"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/mocks"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/repositories"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/setup"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRouter(t *testing.T, repository repositories.IUserRepository) http.Handler {
	t.Helper()

	c := setup.RegisterHttpServer(mocks.RegisterTestServices(lambdaioc.New())).
		RegisterValue(setup.KeyUserRepository, repository)

	router, err := lambdaioc.Resolve[*gin.Engine](c, setup.KeyRouter)
	require.NoError(t, err)
	return router
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestHttpServer(t *testing.T) {
	t.Parallel()

	t.Run("should serve users", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIUserRepository(ctrl)
		repository.EXPECT().GetByID(gomock.Any(), int64(7)).Return(&repositories.User{
			ID:    7,
			Name:  "Jane Doe",
			Email: "jane.doe@example.com",
		}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/users/7", nil)
		newTestRouter(t, repository).ServeHTTP(recorder, request)

		require.Equal(t, http.StatusOK, recorder.Code)
		require.JSONEq(t, `{"id":7,"name":"Jane Doe","email":"jane.doe@example.com"}`, recorder.Body.String())
	})

	t.Run("should map missing users to 404", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIUserRepository(ctrl)
		repository.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/users/404", nil)
		newTestRouter(t, repository).ServeHTTP(recorder, request)

		require.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("should reject invalid bodies", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		repository := mocks.NewMockIUserRepository(ctrl)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader("{"))
		request.Header.Set("Content-Type", "application/json")
		newTestRouter(t, repository).ServeHTTP(recorder, request)

		require.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("should check every handler binding", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		c := mocks.RegisterTestServices(lambdaioc.New()).
			RegisterValue(setup.KeyUserRepository, mocks.NewMockIUserRepository(ctrl))

		require.NoError(t, setup.CheckBindings(context.Background(), c))

		broken := c.Register(setup.KeyLogger, func(*lambdaioc.Container) (any, error) {
			return "not a logger", nil
		})
		require.ErrorIs(t, setup.CheckBindings(context.Background(), broken), lambdaioc.ErrTypeMismatch)
	})
}
