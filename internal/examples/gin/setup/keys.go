package setup

import lambdaioc "github.com/Coder-Spirit/lambda-ioc"

// Binding keys of the example application.
const (
	KeyConfig         = "config"
	KeyDB             = "db"
	KeyLogger         = "logger"
	KeyUserRepository = "userRepository"
	KeyRouter         = "router"
	KeyServer         = "server"

	// Request scoped, registered by the container middleware.
	KeyGinContext = "ginContext"

	HandlersGroup   = "handlers"
	MiddlewareGroup = "middleware"
)

var (
	KeyGetUserByIDHandler = HandlersGroup + lambdaioc.GroupSeparator + "getUserByID"
	KeyCreateUserHandler  = HandlersGroup + lambdaioc.GroupSeparator + "createUser"
	KeyUpdateUserHandler  = HandlersGroup + lambdaioc.GroupSeparator + "updateUser"
	KeyDeleteUserHandler  = HandlersGroup + lambdaioc.GroupSeparator + "deleteUser"
)
