// Package pipeline drives one sync run: sequential fetch, then a bounded
// fan-out of create-item calls.
package pipeline

import (
	"context"
	"log"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"rolesync/internal/domain"
)

const DefaultWorkers = 5

type Fetcher interface {
	OpenRoles(ctx context.Context) []domain.Role
}

type Pusher interface {
	CreateItem(ctx context.Context, role domain.Role) error
}

// Push fans the roles out across at most workers concurrent create calls and
// returns how many landed. Pushes are independent: one failing never cancels
// its siblings, it just logs and counts zero.
func Push(ctx context.Context, p Pusher, roles []domain.Role, workers int) int {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	var added atomic.Int64
	var g errgroup.Group
	g.SetLimit(workers)

	for _, role := range roles {
		role := role
		g.Go(func() error {
			if err := p.CreateItem(ctx, role); err != nil {
				log.Printf("[push] job %d (%s): %v", role.JobID, role.Title, err)
				return nil
			}
			log.Printf("[push] added job %d (%s)", role.JobID, role.Title)
			added.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	return int(added.Load())
}

// Run executes one fetch→push cycle and reports totals.
func Run(ctx context.Context, f Fetcher, p Pusher, workers int) (fetched, added int) {
	roles := f.OpenRoles(ctx)
	if len(roles) == 0 {
		log.Printf("[run] no open roles found")
		return 0, 0
	}

	added = Push(ctx, p, roles, workers)
	log.Printf("[run] processed %d roles, added %d", len(roles), added)
	return len(roles), added
}
