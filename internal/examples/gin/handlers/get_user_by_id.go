package handlers

import (
	"context"
	"errors"

	"github.com/Coder-Spirit/lambda-ioc/internal/examples/gin/repositories"
	"github.com/sirupsen/logrus"
)

type GetUserByIDHandler struct {
	logger         *logrus.Entry
	userRepository repositories.IUserRepository
}

func NewGetUserByIDHandler(logger *logrus.Entry, userRepository repositories.IUserRepository) *GetUserByIDHandler {
	return &GetUserByIDHandler{
		logger:         logger,
		userRepository: userRepository,
	}
}

type GetUserByIDInput struct {
	ID int64 `uri:"id" binding:"required"`
}

type GetUserByIDOutput struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

var ErrUserNotFound = errors.New("user not found")

func (h *GetUserByIDHandler) Handle(ctx context.Context, input *GetUserByIDInput) (*GetUserByIDOutput, error) {
	logger := h.logger.WithField("user_id", input.ID)
	logger.Infof("Finding user")

	user, err := h.userRepository.GetByID(ctx, input.ID)
	if err != nil {
		logger.WithError(err).Errorf("Failed to get user")
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	logger.Infof("User found")
	return &GetUserByIDOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
