package add_line_item

import (
	"context"

	addLineItem "github.com/m04kA/TourOperator-BookingService/internal/usecase/add_line_item"
)

type AddLineItemUseCase interface {
	Execute(ctx context.Context, req *addLineItem.Request) (*addLineItem.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
