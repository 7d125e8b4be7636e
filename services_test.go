package lambdaioc

import "github.com/google/uuid"

type IService interface {
	GetValue() int
}
type Service struct {
	value string
}

func (s Service) GetValue() int {
	return 12
}

func NewService() IService {
	return &Service{
		value: uuid.NewString(),
	}
}

func NewServiceWithCallback(callback func()) func() IService {
	return func() IService {
		callback()
		return NewService()
	}
}

func NewServiceUnsafe() (IService, error) {
	return &Service{value: uuid.NewString()}, nil
}

type CustomError struct{}

func (c CustomError) Error() string {
	return "custom error"
}

var customError = &CustomError{}

func NewServiceError() (IService, error) {
	return nil, customError
}

type IServiceOne interface {
	GetValueOne() int
}
type ServiceOne struct {
	value string
}

func NewServiceOne() IServiceOne {
	return &ServiceOne{
		value: uuid.NewString(),
	}
}

func (s ServiceOne) GetValueOne() int {
	return 1
}

type IServiceTwo interface {
	GetValueTwo() int
}
type ServiceTwo struct {
	value string
}

func NewServiceTwo() (IServiceTwo, error) {
	return &ServiceTwo{
		value: uuid.NewString(),
	}, nil
}

func (s ServiceTwo) GetValueTwo() int {
	return 2
}

type IServiceThree interface {
	GetValueThree() int
}
type ServiceThree struct {
	value      string
	serviceOne IServiceOne
	serviceTwo IServiceTwo
}

func NewServiceThree(serviceOne IServiceOne, serviceTwo IServiceTwo) IServiceThree {
	return &ServiceThree{
		value:      uuid.NewString(),
		serviceOne: serviceOne,
		serviceTwo: serviceTwo,
	}
}

func (s ServiceThree) GetValueThree() int {
	return s.serviceOne.GetValueOne() + s.serviceTwo.GetValueTwo()
}

type Pair struct {
	Number float64
	Text   string
}

func NewPair(number float64, text string) *Pair {
	return &Pair{Number: number, Text: text}
}

type Greeter interface {
	Greet() string
}

type greeter struct {
	greeting string
}

func NewGreeter(greeting string) Greeter {
	return &greeter{greeting: greeting}
}

func (g *greeter) Greet() string {
	return g.greeting
}

type GreeterClient struct {
	greeter Greeter
}

func NewGreeterClient(greeter Greeter) *GreeterClient {
	return &GreeterClient{greeter: greeter}
}

// DependsOnContainer looks bindings up lazily through the container it was
// built from.
type DependsOnContainer struct {
	resolver  Resolver
	TheAnswer int
}

func NewDependsOnContainer(resolver Resolver) (*DependsOnContainer, error) {
	answer, err := Resolve[int](resolver, "theAnswerToEverything")
	if err != nil {
		return nil, err
	}
	return &DependsOnContainer{resolver: resolver, TheAnswer: answer}, nil
}
