package setup

import (
	"context"
	"database/sql"

	lambdaioc "github.com/Coder-Spirit/lambda-ioc"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/handlers"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/infra"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/repositories"
	"github.com/sirupsen/logrus"
)

func RegisterServices(c *lambdaioc.Container, config infra.Config) *lambdaioc.Container {
	return c.
		RegisterValue(KeyConfig, config).
		// The database is opened once and shared by every container derived
		// from this one, including the per-request containers.
		RegisterAsync(KeyDB, lambdaioc.AsyncSingleton(openDB)).
		// Replaced by a request logger in every request container.
		Register(KeyLogger, lambdaioc.Singleton(func(*lambdaioc.Container) (any, error) {
			return logrus.NewEntry(logrus.StandardLogger()), nil
		})).
		RegisterAsyncConstructor(KeyUserRepository, repositories.NewUserRepository, KeyDB).
		RegisterAsyncConstructor(KeyGetUserByIDHandler, handlers.NewGetUserByIDHandler, KeyLogger, KeyUserRepository).
		RegisterAsyncConstructor(KeyCreateUserHandler, handlers.NewCreateUserHandler, KeyLogger, KeyUserRepository).
		RegisterAsyncConstructor(KeyUpdateUserHandler, handlers.NewUpdateUserHandler, KeyLogger, KeyUserRepository).
		RegisterAsyncConstructor(KeyDeleteUserHandler, handlers.NewDeleteUserHandler, KeyLogger, KeyUserRepository)
}

func openDB(ctx context.Context, c *lambdaioc.Container) (any, error) {
	config, err := lambdaioc.Resolve[infra.Config](c, KeyConfig)
	if err != nil {
		return nil, err
	}
	return infra.NewDB(ctx, config)
}

// CloseDB closes the shared database.
func CloseDB(ctx context.Context, c *lambdaioc.Container) error {
	db, err := lambdaioc.ResolveAsync[*sql.DB](ctx, c, KeyDB)
	if err != nil {
		return err
	}
	return db.Close()
}

// CheckBindings resolves every handler once, so missing or mistyped bindings
// are reported at startup instead of on the first request.
func CheckBindings(ctx context.Context, c *lambdaioc.Container) error {
	_, err := c.ResolveGroupAsync(ctx, HandlersGroup)
	return err
}
