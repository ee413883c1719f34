package memtable

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/QuangTung97/crowdfund-ledger/pkg/lease"
	"github.com/coocood/freecache"
)

const (
	defaultLeaseDuration = 3 * time.Second
	leaseSweepThreshold  = 1024
)

type leaseEntry struct {
	id       uint64
	expireAt time.Time
}

// MemTable is an in-process byte cache with per entry expiry.
// A value is only stored through the lease granted on a miss,
// and Delete revokes that lease.
type MemTable struct {
	cache      *freecache.Cache
	ttlSeconds int

	leaseDuration time.Duration
	now           func() time.Time

	mut         sync.Mutex
	lastLeaseID uint64
	leases      map[string]leaseEntry
}

// Option ...
type Option func(m *MemTable)

// WithLeaseDuration sets how long a granted lease blocks other callers
func WithLeaseDuration(d time.Duration) Option {
	return func(m *MemTable) {
		m.leaseDuration = d
	}
}

// WithClock ...
func WithClock(now func() time.Time) Option {
	return func(m *MemTable) {
		m.now = now
	}
}

// New creates freecache with size in bytes, zero ttl means no expiry
func New(size int, ttlSeconds int, options ...Option) *MemTable {
	m := &MemTable{
		cache:      freecache.NewCache(size),
		ttlSeconds: ttlSeconds,

		leaseDuration: defaultLeaseDuration,
		now:           time.Now,

		leases: map[string]leaseEntry{},
	}
	for _, fn := range options {
		fn(m)
	}
	return m
}

// LeaseGet returns the value, or grants a lease when no other lease is alive
func (m *MemTable) LeaseGet(_ context.Context, key string) (lease.GetOutput, error) {
	m.mut.Lock()
	defer m.mut.Unlock()

	data, err := m.cache.Get([]byte(key))
	if err == nil {
		return lease.GetOutput{Type: lease.GetTypeOK, Data: data}, nil
	}
	if !errors.Is(err, freecache.ErrNotFound) {
		return lease.GetOutput{}, err
	}

	now := m.now()
	if entry, ok := m.leases[key]; ok && now.Before(entry.expireAt) {
		return lease.GetOutput{Type: lease.GetTypeRejected}, nil
	}

	if len(m.leases) >= leaseSweepThreshold {
		m.sweepExpired(now)
	}

	m.lastLeaseID++
	m.leases[key] = leaseEntry{
		id:       m.lastLeaseID,
		expireAt: now.Add(m.leaseDuration),
	}
	return lease.GetOutput{Type: lease.GetTypeGranted, LeaseID: m.lastLeaseID}, nil
}

// LeaseSet stores data only when leaseID is still the lease of key
func (m *MemTable) LeaseSet(_ context.Context, key string, data []byte, leaseID uint64) error {
	m.mut.Lock()
	defer m.mut.Unlock()

	entry, ok := m.leases[key]
	if !ok || entry.id != leaseID {
		return nil
	}
	delete(m.leases, key)
	return m.cache.Set([]byte(key), data, m.ttlSeconds)
}

// Delete removes the value and revokes any outstanding lease
func (m *MemTable) Delete(_ context.Context, key string) error {
	m.mut.Lock()
	defer m.mut.Unlock()

	m.cache.Del([]byte(key))
	delete(m.leases, key)
	return nil
}

func (m *MemTable) sweepExpired(now time.Time) {
	for key, entry := range m.leases {
		if !now.Before(entry.expireAt) {
			delete(m.leases, key)
		}
	}
}

// EntryCount ...
func (m *MemTable) EntryCount() int64 {
	return m.cache.EntryCount()
}

// LeaseCount ...
func (m *MemTable) LeaseCount() int {
	m.mut.Lock()
	defer m.mut.Unlock()
	return len(m.leases)
}
