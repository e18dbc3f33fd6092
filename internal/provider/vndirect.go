package provider

import (
	"vn-ohlcv/internal/provider/vndirect"
)

// VNDirectProvider is a DataProvider backed by the VNDirect dchart history API.
// It embeds *vndirect.Client to expose FetchDaily with minimal boilerplate.
type VNDirectProvider struct {
	*vndirect.Client
}

// NewVNDirectProvider creates a new dchart-backed DataProvider.
func NewVNDirectProvider(opts vndirect.Options) (*VNDirectProvider, error) {
	client, err := vndirect.NewClient(opts)
	if err != nil {
		return nil, err
	}
	return &VNDirectProvider{Client: client}, nil
}

// GetName returns provider name
func (p *VNDirectProvider) GetName() string {
	return "VNDirect"
}
