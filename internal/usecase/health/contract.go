package health

import "context"

// DBPinger checks cache store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}
