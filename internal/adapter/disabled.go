package adapter

import "context"

// disabledBinClient is used when no remote backend is configured.
type disabledBinClient struct{}

// NewDisabledBinClient returns a [BinClient] whose Configured is false and
// whose calls all fail with [ErrNotConfigured].
func NewDisabledBinClient() BinClient {
	return disabledBinClient{}
}

func (disabledBinClient) Configured() bool { return false }

func (disabledBinClient) CreateBin(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

func (disabledBinClient) GetBin(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

func (disabledBinClient) UpdateBin(context.Context, string, string) error {
	return ErrNotConfigured
}
