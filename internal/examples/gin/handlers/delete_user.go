package handlers

import (
	"context"

	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/repositories"
	"github.com/sirupsen/logrus"
)

type DeleteUserHandler struct {
	logger         *logrus.Entry
	userRepository repositories.IUserRepository
}

func NewDeleteUserHandler(logger *logrus.Entry, userRepository repositories.IUserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{
		logger:         logger,
		userRepository: userRepository,
	}
}

type DeleteUserInput struct {
	ID int64 `uri:"id" binding:"required"`
}

type DeleteUserOutput struct{}

func (h *DeleteUserHandler) Handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	logger := h.logger.WithField("user_id", input.ID)
	logger.Infof("Deleting user")

	err := h.userRepository.Delete(ctx, input.ID)
	if err != nil {
		logger.WithError(err).Errorf("Failed to delete user")
		return nil, err
	}

	logger.Infof("User deleted")
	return &DeleteUserOutput{}, nil
}
