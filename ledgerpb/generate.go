package ledgerpb

//go:generate protoc -I ../proto --go_out=.. --go_opt=module=github.com/QuangTung97/crowdfund-ledger --go-grpc_out=.. --go-grpc_opt=module=github.com/QuangTung97/crowdfund-ledger crowdfund/v1/ledger.proto
