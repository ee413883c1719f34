package main

import (
	"fmt"

	"github.com/QuangTung97/crowdfund-ledger/config"
	"github.com/QuangTung97/crowdfund-ledger/model"
	"github.com/QuangTung97/crowdfund-ledger/pkg/cacheclient"
	"github.com/QuangTung97/crowdfund-ledger/pkg/memtable"
	"github.com/QuangTung97/crowdfund-ledger/repository"
	"github.com/QuangTung97/crowdfund-ledger/repository/memstore"
	"github.com/QuangTung97/crowdfund-ledger/service/ledger"
	"github.com/QuangTung97/crowdfund-ledger/token"
	"go.uber.org/zap"
)

type dependencies struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	pledgeRepo   repository.Pledge
	eventRepo    repository.Event

	cache         ledger.Cache
	tokens        token.Registry
	ledgerAddress model.Address
}

func newDependencies(conf config.Config, logger *zap.Logger) (dependencies, func()) {
	var closers []func()

	deps := dependencies{
		ledgerAddress: model.Address(conf.Ledger.Address),
	}

	switch conf.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		store := memstore.New()
		deps.provider = store
		deps.campaignRepo = store
		deps.pledgeRepo = store
		deps.eventRepo = store

	default:
		db := conf.MySQL.MustConnect(logger)
		closers = append(closers, func() { _ = db.Close() })

		deps.provider = repository.NewProvider(db)
		deps.campaignRepo = repository.NewCampaign()
		deps.pledgeRepo = repository.NewPledge()
		deps.eventRepo = repository.NewEvent()
	}

	cache, closeCache := newCache(conf)
	if closeCache != nil {
		closers = append(closers, closeCache)
	}
	deps.cache = cache

	tokens, err := newTokenRegistry(conf.Ledger)
	if err != nil {
		panic(err)
	}
	deps.tokens = tokens

	return deps, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

func newCache(conf config.Config) (ledger.Cache, func()) {
	switch conf.Cache.Driver {
	case config.CacheDriverLocal:
		return memtable.New(conf.Cache.LocalSize, int(conf.Cache.TTLSeconds)), nil

	case config.CacheDriverMemcache:
		client := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.NumConns, conf.Cache.TTLSeconds)
		return client, func() { _ = client.Close() }

	default:
		return nil, nil
	}
}

// newTokenRegistry builds the in-memory development tokens, every initial
// balance is fully approved to the ledger account
func newTokenRegistry(conf config.LedgerConfig) (*token.MemoryRegistry, error) {
	ledgerAddress := model.Address(conf.Address)
	registry := token.NewMemoryRegistry(ledgerAddress)

	for _, tokenConf := range conf.Tokens {
		erc20 := token.NewLedger()
		for _, b := range tokenConf.Balances {
			amount, err := model.AmountFromString(b.Amount)
			if err != nil {
				return nil, fmt.Errorf("token %s balance of %s: %w", tokenConf.Address, b.Account, err)
			}

			account := model.Address(b.Account)
			if err := erc20.Mint(account, amount); err != nil {
				return nil, fmt.Errorf("token %s mint to %s: %w", tokenConf.Address, b.Account, err)
			}
			erc20.Approve(account, ledgerAddress, amount)
		}
		registry.Add(model.Address(tokenConf.Address), erc20)
	}
	return registry, nil
}
