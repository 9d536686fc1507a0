package session

import (
	"context"

	"github.com/superma0035/zapdine/pkg/types"
)

// external order store used by "place order"
// failures should wrap types.ErrOrderCreationFailed
type OrderCreator interface {
	CreateOrder(ctx context.Context, order types.NewOrder) (string, error)
}

// moves the customer to another path
type Navigator interface {
	Redirect(path string)
}

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// one-shot customer facing message
type Notifier interface {
	Notify(title, message string, severity Severity)
}
