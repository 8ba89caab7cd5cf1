// Package outcome holds the follow-up actions run after a payment reaches
// paid, cancelled or rejected.
package outcome

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mercadopago_sync/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	HandlerLog          = "log"
	HandlerNoop         = "noop"
	HandlerRedisPublish = "redis_publish"
)

var ErrOutcomeHandlerNotFound = errors.New("outcome handler not found")

// Publisher is the subset of a redis client used to emit payment events.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Dependencies are handed to every factory builder.
type Dependencies struct {
	Publisher Publisher
	Channel   string
}

type builder func(deps Dependencies) (interfaces.OutcomeHandlerFactory, error)

var registry = map[string]builder{
	HandlerLog: func(Dependencies) (interfaces.OutcomeHandlerFactory, error) {
		return NewLogHandler, nil
	},
	HandlerNoop: func(Dependencies) (interfaces.OutcomeHandlerFactory, error) {
		return NewNoopHandler, nil
	},
	HandlerRedisPublish: func(deps Dependencies) (interfaces.OutcomeHandlerFactory, error) {
		if deps.Publisher == nil {
			return nil, errors.New("redis_publish outcome handler requires a publisher")
		}
		if strings.TrimSpace(deps.Channel) == "" {
			return nil, errors.New("redis_publish outcome handler requires a channel")
		}
		return NewRedisPublishFactory(deps.Publisher, deps.Channel), nil
	},
}

// Resolve returns the factory registered under name. An empty name
// resolves to nil, meaning no handler runs for that outcome.
func Resolve(name string, deps Dependencies) (interfaces.OutcomeHandlerFactory, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return nil, nil
	}
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrOutcomeHandlerNotFound, name, strings.Join(Names(), ", "))
	}
	return b(deps)
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
