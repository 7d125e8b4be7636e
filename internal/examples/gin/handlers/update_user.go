package handlers

import (
	"context"

	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/repositories"
	"github.com/sirupsen/logrus"
)

type UpdateUserHandler struct {
	logger         *logrus.Entry
	userRepository repositories.IUserRepository
}

func NewUpdateUserHandler(logger *logrus.Entry, userRepository repositories.IUserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{
		logger:         logger,
		userRepository: userRepository,
	}
}

type UpdateUserInput struct {
	ID    int64  `json:"id" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserOutput struct{}

func (h *UpdateUserHandler) Handle(ctx context.Context, input *UpdateUserInput) (*UpdateUserOutput, error) {
	logger := h.logger.WithField("user_id", input.ID)
	logger.Infof("Updating user")
	user := &repositories.User{
		ID:    input.ID,
		Name:  input.Name,
		Email: input.Email,
	}
	err := h.userRepository.Update(ctx, user)
	if err != nil {
		logger.WithError(err).Errorf("Failed to update user")
		return nil, err
	}

	logger.Infof("User updated")
	return &UpdateUserOutput{}, nil
}
