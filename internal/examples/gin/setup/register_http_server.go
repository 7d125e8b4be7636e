package setup

import (
	"errors"
	"net/http"
	"time"

	lambdaioc "github.com/Coder-Spirit/lambda-ioc"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/handlers"
	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/infra"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func RegisterHttpServer(c *lambdaioc.Container) *lambdaioc.Container {
	return c.
		// Middlewares are resolved as a group, in registration order.
		RegisterValue(MiddlewareGroup+lambdaioc.GroupSeparator+"requestLog", gin.HandlerFunc(requestLogMiddleware)).
		RegisterConstructor(MiddlewareGroup+lambdaioc.GroupSeparator+"container", containerMiddleware, lambdaioc.SelfKey).
		Register(KeyRouter, lambdaioc.Singleton(newRouter)).
		Register(KeyServer, lambdaioc.Singleton(lambdaioc.Constructor(newServer, KeyConfig, KeyRouter)))
}

func newServer(config infra.Config, router *gin.Engine) *http.Server {
	return &http.Server{
		Addr:    config.Addr,
		Handler: router,
	}
}

func newRouter(c *lambdaioc.Container) (any, error) {
	middlewares, err := lambdaioc.ResolveGroup[gin.HandlerFunc](c, MiddlewareGroup)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares...)

	router.GET("/users/:id", func(c *gin.Context) {
		// You don't need to manually instantiate your handlers, they are
		// built from the request container.
		handler, err := resolveHandler[*handlers.GetUserByIDHandler](c, KeyGetUserByIDHandler)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		input := &handlers.GetUserByIDInput{}
		err = c.ShouldBindUri(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}

		output, err := handler.Handle(c.Request.Context(), input)
		if err != nil {
			if errors.Is(err, handlers.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"msg": err.Error()})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			}
			return
		}

		c.JSON(http.StatusOK, output)
	})

	router.POST("/users", func(c *gin.Context) {
		handler, err := resolveHandler[*handlers.CreateUserHandler](c, KeyCreateUserHandler)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		input := &handlers.CreateUserInput{}
		err = c.ShouldBindJSON(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}

		output, err := handler.Handle(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, output)
	})

	router.PUT("/users", func(c *gin.Context) {
		handler, err := resolveHandler[*handlers.UpdateUserHandler](c, KeyUpdateUserHandler)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		input := &handlers.UpdateUserInput{}
		err = c.ShouldBindJSON(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}

		output, err := handler.Handle(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.JSON(http.StatusOK, output)
	})

	router.DELETE("/users/:id", func(c *gin.Context) {
		handler, err := resolveHandler[*handlers.DeleteUserHandler](c, KeyDeleteUserHandler)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		input := &handlers.DeleteUserInput{}
		err = c.ShouldBindUri(input)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
			return
		}

		output, err := handler.Handle(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
			return
		}

		c.JSON(http.StatusOK, output)
	})

	return router, nil
}

func requestLogMiddleware(c *gin.Context) {
	start := time.Now()

	// Process request
	c.Next()

	log.WithFields(log.Fields{
		"status":    c.Writer.Status(),
		"duration":  time.Since(start),
		"client_ip": c.ClientIP(),
		"method":    c.Request.Method,
		"path":      c.Request.URL.Path,
	}).Info("request handled")
}

// containerMiddleware gives every request its own container, derived from
// the one the middleware was resolved from. Request values are registered on
// the derived container only, so concurrent requests never see each other's.
func containerMiddleware(root *lambdaioc.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		logger := log.WithFields(log.Fields{
			"request_id": uuid.NewString(),
		})

		c := root.
			RegisterValue(KeyGinContext, ctx).
			RegisterValue(KeyLogger, logger)

		// Store the container in gin context to retrieve it in the handler functions.
		ctx.Set(containerContextKey, c)

		ctx.Next()
	}
}

const containerContextKey = "container"

var ErrNoContainerInContext = errors.New("no container in context")

// This is a helper function to retrieve the required instance
// at a gin handler function.
func resolveHandler[T any](c *gin.Context, key lambdaioc.Key) (T, error) {
	var zero T
	value, found := c.Get(containerContextKey)
	if !found {
		return zero, ErrNoContainerInContext
	}

	container, ok := value.(*lambdaioc.Container)
	if !ok {
		return zero, ErrNoContainerInContext
	}

	return lambdaioc.ResolveAsync[T](c.Request.Context(), container, key)
}
