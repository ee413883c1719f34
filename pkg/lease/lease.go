package lease

// GetType ...
type GetType int

const (
	// GetTypeOK when entry is found
	GetTypeOK GetType = 1

	// GetTypeGranted when entry is not found but lease is granted
	GetTypeGranted GetType = 2

	// GetTypeRejected when entry is not found and another caller holds the lease
	GetTypeRejected GetType = 3
)

// GetOutput ...
type GetOutput struct {
	Type    GetType
	Data    []byte
	LeaseID uint64
}
