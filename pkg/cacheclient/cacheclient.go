package cacheclient

import (
	"context"
	"time"

	"github.com/QuangTung97/crowdfund-ledger/pkg/lease"
	"github.com/QuangTung97/go-memcache/memcache"
)

const leaseTTLSeconds = 5

// Client stores encoded values in memcached using meta commands
type Client struct {
	client *memcache.Client
	ttl    uint32
}

// New ...
func New(addr string, numConns int, ttlSeconds uint32) *Client {
	client, err := memcache.New(addr, numConns, memcache.WithRetryDuration(10*time.Second))
	if err != nil {
		panic(err)
	}
	return &Client{
		client: client,
		ttl:    ttlSeconds,
	}
}

// UnsafeFlushAll ...
func (c *Client) UnsafeFlushAll() error {
	p := c.client.Pipeline()
	defer p.Finish()
	return p.FlushAll()()
}

// Close ...
func (c *Client) Close() error {
	return c.client.Close()
}

// LeaseGet ...
func (c *Client) LeaseGet(_ context.Context, key string) (lease.GetOutput, error) {
	p := c.client.Pipeline()
	defer p.Finish()

	resp, err := p.MGet(key, memcache.MGetOptions{
		N:   leaseTTLSeconds,
		CAS: true,
	})()
	if err != nil {
		return lease.GetOutput{}, err
	}
	if resp.Type != memcache.MGetResponseTypeVA || resp.Flags&memcache.MGetFlagZ != 0 {
		return lease.GetOutput{
			Type: lease.GetTypeRejected,
		}, nil
	}

	if resp.Flags&memcache.MGetFlagW != 0 {
		return lease.GetOutput{
			Type:    lease.GetTypeGranted,
			LeaseID: resp.CAS,
		}, nil
	}

	return lease.GetOutput{
		Type: lease.GetTypeOK,
		Data: resp.Data,
	}, nil
}

// LeaseSet only stores when the cas of the key still equals leaseID
func (c *Client) LeaseSet(_ context.Context, key string, data []byte, leaseID uint64) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MSet(key, data, memcache.MSetOptions{
		CAS: leaseID,
		TTL: c.ttl,
	})()
	return err
}

// Delete also removes the lease placeholder
func (c *Client) Delete(_ context.Context, key string) error {
	p := c.client.Pipeline()
	defer p.Finish()

	_, err := p.MDel(key, memcache.MDelOptions{})()
	return err
}
