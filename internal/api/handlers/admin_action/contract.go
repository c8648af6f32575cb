package admin_action

import (
	"context"

	adminTransition "github.com/royalrinse/booking-service/internal/usecase/admin_transition"
)

type AdminTransitionUseCase interface {
	Execute(ctx context.Context, req *adminTransition.Request) (*adminTransition.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
