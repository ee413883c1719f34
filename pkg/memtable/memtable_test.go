package memtable

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/QuangTung97/crowdfund-ledger/pkg/lease"
	"github.com/stretchr/testify/assert"
)

type memTableTest struct {
	now time.Time
	m   *MemTable
}

func newMemTableTest(ttlSeconds int) *memTableTest {
	mt := &memTableTest{
		now: time.Date(2022, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	mt.m = New(512*1024, ttlSeconds,
		WithLeaseDuration(3*time.Second),
		WithClock(func() time.Time { return mt.now }),
	)
	return mt
}

func TestMemTable_LeaseGet_Granted_Then_Set(t *testing.T) {
	mt := newMemTableTest(0)
	ctx := context.Background()

	output, err := mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, lease.GetOutput{Type: lease.GetTypeGranted, LeaseID: 1}, output)

	assert.Equal(t, nil, mt.m.LeaseSet(ctx, "key01", []byte("value01"), output.LeaseID))

	output, err = mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, lease.GetOutput{Type: lease.GetTypeOK, Data: []byte("value01")}, output)

	assert.Equal(t, int64(1), mt.m.EntryCount())
	assert.Equal(t, 0, mt.m.LeaseCount())
}

func TestMemTable_LeaseGet_Rejected_While_Lease_Alive(t *testing.T) {
	mt := newMemTableTest(0)
	ctx := context.Background()

	first, err := mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, lease.GetTypeGranted, first.Type)

	output, err := mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, lease.GetOutput{Type: lease.GetTypeRejected}, output)

	mt.now = mt.now.Add(3 * time.Second)

	output, err = mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, lease.GetOutput{Type: lease.GetTypeGranted, LeaseID: 2}, output)

	// the expired lease can no longer store
	assert.Equal(t, nil, mt.m.LeaseSet(ctx, "key01", []byte("stale"), first.LeaseID))
	assert.Equal(t, int64(0), mt.m.EntryCount())

	assert.Equal(t, nil, mt.m.LeaseSet(ctx, "key01", []byte("fresh"), output.LeaseID))
	output, err = mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, []byte("fresh"), output.Data)
}

func TestMemTable_Delete_Revokes_Lease(t *testing.T) {
	mt := newMemTableTest(0)
	ctx := context.Background()

	output, err := mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)

	assert.Equal(t, nil, mt.m.Delete(ctx, "key01"))

	assert.Equal(t, nil, mt.m.LeaseSet(ctx, "key01", []byte("stale"), output.LeaseID))
	assert.Equal(t, int64(0), mt.m.EntryCount())

	output, err = mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, lease.GetOutput{Type: lease.GetTypeGranted, LeaseID: 2}, output)
}

func TestMemTable_Delete_Value(t *testing.T) {
	mt := newMemTableTest(60)
	ctx := context.Background()

	output, err := mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, nil, mt.m.LeaseSet(ctx, "key01", []byte("value01"), output.LeaseID))

	assert.Equal(t, nil, mt.m.Delete(ctx, "key01"))
	assert.Equal(t, nil, mt.m.Delete(ctx, "key01"))
	assert.Equal(t, int64(0), mt.m.EntryCount())

	output, err = mt.m.LeaseGet(ctx, "key01")
	assert.Equal(t, nil, err)
	assert.Equal(t, lease.GetTypeGranted, output.Type)
}

func TestMemTable_Sweeps_Expired_Leases(t *testing.T) {
	mt := newMemTableTest(0)
	ctx := context.Background()

	for i := 0; i < leaseSweepThreshold; i++ {
		_, err := mt.m.LeaseGet(ctx, "key"+strconv.Itoa(i))
		assert.Equal(t, nil, err)
	}
	assert.Equal(t, leaseSweepThreshold, mt.m.LeaseCount())

	mt.now = mt.now.Add(5 * time.Second)

	_, err := mt.m.LeaseGet(ctx, "other")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, mt.m.LeaseCount())
}
