package handlers

import (
	"context"

	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/repositories"
	"github.com/sirupsen/logrus"
)

type CreateUserHandler struct {
	logger         *logrus.Entry
	userRepository repositories.IUserRepository
}

func NewCreateUserHandler(logger *logrus.Entry, userRepository repositories.IUserRepository) *CreateUserHandler {
	return &CreateUserHandler{
		logger:         logger,
		userRepository: userRepository,
	}
}

type CreateUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type CreateUserOutput struct {
	ID int64 `json:"id"`
}

func (h *CreateUserHandler) Handle(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	h.logger.Infof("Creating user")
	user := &repositories.User{
		Name:  input.Name,
		Email: input.Email,
	}
	err := h.userRepository.Create(ctx, user)
	if err != nil {
		h.logger.WithError(err).Errorf("Failed to create user")
		return nil, err
	}

	h.logger.WithField("user_id", user.ID).Infof("User created")
	return &CreateUserOutput{ID: user.ID}, nil
}
