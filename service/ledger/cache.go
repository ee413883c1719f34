package ledger

import (
	"context"
	"strconv"

	"github.com/QuangTung97/crowdfund-ledger/pkg/lease"
)

//go:generate moq -out ledger_mocks_test.go . Cache

// Cache for encoded campaigns, may lose entries at any time.
// Values are only stored through the lease granted by LeaseGet,
// Delete must revoke outstanding leases of the key.
type Cache interface {
	LeaseGet(ctx context.Context, key string) (lease.GetOutput, error)
	LeaseSet(ctx context.Context, key string, data []byte, leaseID uint64) error
	Delete(ctx context.Context, key string) error
}

type nopCache struct {
}

func (nopCache) LeaseGet(context.Context, string) (lease.GetOutput, error) {
	return lease.GetOutput{Type: lease.GetTypeRejected}, nil
}

func (nopCache) LeaseSet(context.Context, string, []byte, uint64) error {
	return nil
}

func (nopCache) Delete(context.Context, string) error {
	return nil
}

func campaignCacheKey(id int64) string {
	return "crowdfund:campaign:" + strconv.FormatInt(id, 10)
}

type inTransactionKey struct {
}

func withinTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, inTransactionKey{}, true)
}

func isInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(inTransactionKey{}).(bool)
	return ok
}
