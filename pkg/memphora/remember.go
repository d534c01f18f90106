package memphora

import (
	"context"

	"github.com/charmbracelet/log"
)

// ChatFunc is a conversational function that receives the user message and
// a block of memory context, and produces a reply.
type ChatFunc func(ctx context.Context, message, memoryContext string) (string, error)

// ContextFunc fetches the memory context relevant to a query.
type ContextFunc func(ctx context.Context, query string) (string, error)

// RecordFunc stores a completed user/assistant exchange.
type RecordFunc func(ctx context.Context, userMessage, assistantReply string) error

// WrappedFunc is a ChatFunc with the memory context parameter already
// taken care of.
type WrappedFunc func(ctx context.Context, message string) (string, error)

// Remember wraps fn so that every invocation fetches memory context
// before the call and records the exchange after it returns. The ordering
// contract: fetch runs exactly once before fn, record exactly once after
// fn returns successfully. A fetch failure degrades to an empty context; a
// record failure is logged and does not fail the call.
func Remember(fetch ContextFunc, record RecordFunc, fn ChatFunc) WrappedFunc {
	return func(ctx context.Context, message string) (string, error) {
		memoryContext, err := fetch(ctx, message)
		if err != nil {
			log.Error("failed to fetch memory context", "error", err)
			memoryContext = ""
		}

		reply, err := fn(ctx, message, memoryContext)
		if err != nil {
			return "", err
		}

		if reply != "" {
			if err := record(ctx, message, reply); err != nil {
				log.Error("failed to record conversation", "error", err)
			}
		}

		return reply, nil
	}
}

// Remember wraps fn with the facade's own context fetch and conversation
// store, bound to the configured user.
func (m *Memphora) Remember(fn ChatFunc) WrappedFunc {
	fetch := func(ctx context.Context, query string) (string, error) {
		return m.GetContext(ctx, query, 5)
	}

	return Remember(fetch, m.StoreConversation, fn)
}
