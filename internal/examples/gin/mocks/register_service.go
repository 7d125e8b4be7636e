package mocks

import (
	"io"

	lambdaioc "github.com/Coder-Spirit/lambda-ioc"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/infra"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/setup"
	"github.com/sirupsen/logrus"
)

// RegisterTestServices registers the application services with a discarding
// logger and an in-memory database. Tests rebind whatever they need to
// control on the returned container.
func RegisterTestServices(c *lambdaioc.Container) *lambdaioc.Container {
	config := infra.Config{
		Addr:   ":0",
		DBPath: "file::memory:?cache=shared",
	}

	return setup.RegisterServices(c, config).
		Register(setup.KeyLogger, func(*lambdaioc.Container) (any, error) {
			logger := logrus.New()
			logger.Out = io.Discard
			return logrus.NewEntry(logger), nil
		})
}
