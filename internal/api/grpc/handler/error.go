package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/daviddelrio-Pursuit/phone-scammer-screener/internal/model"
)

func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrEmptyInput), errors.Is(err, model.ErrInvalidLength):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, model.ErrDuplicate):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, model.ErrPersistence):
		return status.Error(codes.Unavailable, "registry storage unavailable")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
