package interfaces

import (
	"billbridge/internal/domain/entities"
	"context"
)

// ILedgerClient abstracts the utility system's REST API as seen by the
// engine and the status surface. Connection and authentication are driven
// by the composition root; by the time a cycle runs the client is expected
// to be authenticated, and PostSettlement must refuse (not attempt) the
// call otherwise.
type ILedgerClient interface {
	PostSettlement(ctx context.Context, doc entities.SettlementDocument) error
	State() entities.SessionState
	Session() entities.Session
}
