package server

import (
	"errors"

	"github.com/superma0035/zapdine/pkg/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// converts domain errors to gRPC status errors
func toGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codeOf(err), err.Error())
}

func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, types.ErrLeaseNotFound),
		errors.Is(err, types.ErrPageNotFound),
		errors.Is(err, types.ErrItemNotFound),
		errors.Is(err, types.ErrOrderNotFound),
		errors.Is(err, types.ErrRestaurantNotFound):
		return codes.NotFound

	case errors.Is(err, types.ErrTableLocked),
		errors.Is(err, types.ErrSessionNotActive),
		errors.Is(err, types.ErrSessionEnded),
		errors.Is(err, types.ErrEmptyCart):
		return codes.FailedPrecondition

	case errors.Is(err, types.ErrOrderInProgress):
		return codes.Aborted

	case errors.Is(err, types.ErrInvalidQuantity),
		errors.Is(err, types.ErrInvalidStatus),
		errors.Is(err, types.ErrInvalidID):
		return codes.InvalidArgument

	case errors.Is(err, types.ErrUnauthenticated):
		return codes.Unauthenticated

	case errors.Is(err, types.ErrForbidden):
		return codes.PermissionDenied

	// the order store could not take the order, the customer may retry
	case errors.Is(err, types.ErrOrderCreationFailed):
		return codes.Unavailable

	default:
		return codes.Internal
	}
}

func required(field string) error {
	return status.Error(codes.InvalidArgument, field+" required")
}
