package chainPoller

import (
	"context"

	"github.com/xmiraclez/Pastebin-AVS-Proto/pkg/types"
)

type IChainPoller interface {
	Start(ctx context.Context) error
}

// IEventHandler reacts to a single decoded contract event. Handlers own their failures: a
// returned error is logged by the poller and never halts it.
type IEventHandler interface {
	HandleEvent(ctx context.Context, event types.DomainEvent) error
}
