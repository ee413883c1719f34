package main

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/QuangTung97/crowdfund-ledger/config"
	"github.com/QuangTung97/crowdfund-ledger/model"
	"github.com/QuangTung97/crowdfund-ledger/pkg/cacheclient"
	"github.com/QuangTung97/crowdfund-ledger/pkg/memtable"
	"github.com/QuangTung97/crowdfund-ledger/repository"
	"github.com/QuangTung97/crowdfund-ledger/repository/memstore"
	"github.com/QuangTung97/crowdfund-ledger/service/ledger"
	"github.com/QuangTung97/crowdfund-ledger/token"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
)

const benchToken model.Address = "bench-token"

func main() {
	rootCmd := cobra.Command{
		Use: "bench",
	}
	rootCmd.AddCommand(
		benchPledgeCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

type benchOptions struct {
	memory      bool
	memcache    bool
	numThreads  int
	numElements int
}

func newBenchService(conf config.Config, opts benchOptions) *ledger.Service {
	ledgerAddress := model.Address(conf.Ledger.Address)

	erc20 := token.NewLedger()
	for th := 0; th < opts.numThreads; th++ {
		pledger := pledgerAddress(th)
		amount := model.NewAmount(uint64(opts.numElements))
		if err := erc20.Mint(pledger, amount); err != nil {
			panic(err)
		}
		erc20.Approve(pledger, ledgerAddress, amount)
	}
	tokens := token.NewMemoryRegistry(ledgerAddress)
	tokens.Add(benchToken, erc20)

	logger := config.NewLogger(conf.Log)

	var cache ledger.Cache = memtable.New(8*1024*1024, 0)
	if opts.memcache {
		numConns := 1
		if conf.Memcache.NumConns > 0 {
			numConns = conf.Memcache.NumConns
		}
		logger.Info("using memcached", zap.String("addr", conf.Memcache.Addr()), zap.Int("numConns", numConns))
		cache = cacheclient.New(conf.Memcache.Addr(), numConns, conf.Cache.TTLSeconds)
	}

	if opts.memory {
		store := memstore.New()
		return ledger.NewService(store, store, store, store, tokens, ledgerAddress, ledger.WithCache(cache))
	}

	db := conf.MySQL.MustConnect(logger)
	return ledger.NewService(
		repository.NewProvider(db),
		repository.NewCampaign(), repository.NewPledge(), repository.NewEvent(),
		tokens, ledgerAddress, ledger.WithCache(cache),
	)
}

func pledgerAddress(index int) model.Address {
	return model.Address(fmt.Sprintf("pledger%03d", index))
}

func benchPledge(opts benchOptions) {
	conf := config.Load()
	fmt.Println("MEMORY:", opts.memory)
	fmt.Println("THREADS:", opts.numThreads, "ELEMENTS:", opts.numElements)

	svc := newBenchService(conf, opts)

	now := time.Now()
	campaignID, err := svc.Launch(context.Background(), "bench-creator", ledger.LaunchInput{
		Goal:      model.NewAmount(uint64(opts.numThreads * opts.numElements)),
		StartTime: now.Add(-time.Minute),
		EndTime:   now.Add(time.Hour),
		Token:     benchToken,
	})
	if err != nil {
		panic(err)
	}

	durations := make([][]time.Duration, opts.numThreads)

	totalStart := time.Now()

	var wg sync.WaitGroup
	wg.Add(opts.numThreads)
	for th := 0; th < opts.numThreads; th++ {
		threadIndex := th
		go func() {
			defer wg.Done()

			pledger := pledgerAddress(threadIndex)
			for i := 0; i < opts.numElements; i++ {
				start := time.Now()
				err := svc.Pledge(context.Background(), pledger, campaignID, model.NewAmount(1))
				if err != nil {
					fmt.Println("PLEDGE:", err)
				}
				_, err = svc.GetCampaign(context.Background(), campaignID)
				if err != nil {
					fmt.Println("GET CAMPAIGN:", err)
				}
				durations[threadIndex] = append(durations[threadIndex], time.Since(start))
			}
		}()
	}
	wg.Wait()
	fmt.Println("TOTAL TIME", time.Since(totalStart))

	campaign, err := svc.GetCampaign(context.Background(), campaignID)
	if err != nil {
		panic(err)
	}
	fmt.Println("PLEDGED:", campaign.Pledged, "GOAL MET:", campaign.GoalMet())

	printPercentiles(durations)
}

func printPercentiles(durations [][]time.Duration) {
	var history []time.Duration

	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}

	numHistory := len(history)
	if numHistory == 0 {
		return
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	fmt.Println("P50:", history[numHistory*50/100])
	fmt.Println("P90:", history[numHistory*90/100])
	fmt.Println("P95:", history[numHistory*95/100])
	fmt.Println("P99:", history[numHistory*99/100])
	fmt.Println("P999:", history[numHistory*999/1000])
	fmt.Println("MAX:", history[numHistory-1])
	fmt.Println("HISTORY LEN:", numHistory)

	fmt.Println("AVG:", total/time.Duration(numHistory))
}

func benchPledgeCommand() *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "pledge",
		Short: "benchmark concurrent pledges on a single campaign",
		Run: func(cmd *cobra.Command, args []string) {
			benchPledge(opts)
		},
	}
	cmd.Flags().BoolVar(&opts.memory, "memory", false, "use in-memory storage instead of mysql")
	cmd.Flags().BoolVar(&opts.memcache, "memcache", false, "cache campaigns in memcached instead of freecache")
	cmd.Flags().IntVar(&opts.numThreads, "threads", 50, "number of concurrent pledgers")
	cmd.Flags().IntVar(&opts.numElements, "elements", 200, "number of pledges per pledger")
	return cmd
}
