package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-client-panel/internal/config"
	"github.com/MKhiriev/go-client-panel/internal/logger"
	"github.com/MKhiriev/go-client-panel/internal/utils"
	"github.com/MKhiriev/go-client-panel/models"
)

// createAttempts is how many fresh ids CreateBin tries before giving up on
// id collisions.
const createAttempts = 3

type httpBinClient struct {
	client *utils.HTTPClient
	now    func() time.Time
	logger *logger.Logger
}

// NewHTTPBinClient constructs a [BinClient] talking to the bin server at
// adapterCfg.HTTPAddress.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPBinClient(adapterCfg config.Adapter, logger *logger.Logger) (BinClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	return &httpBinClient{client: client, now: time.Now, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Configured implements [BinClient].
func (h *httpBinClient) Configured() bool {
	return true
}

// CreateBin implements [BinClient]. It POSTs to /api/bins/{id} with a
// client-generated id and retries with a new id when the server answers 409.
func (h *httpBinClient) CreateBin(ctx context.Context, blob string) (string, error) {
	var lastErr error
	for range createAttempts {
		id := utils.NewBinID(h.now())

		resp, err := h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetPathParam("id", id).
			SetBody(models.Bin{Data: blob}).
			Post("/api/bins/{id}")
		if err != nil {
			return "", fmt.Errorf("%w: create bin request: %w", ErrRemoteUnavailable, err)
		}

		lastErr = mapHTTPError(resp)
		if lastErr == nil {
			return id, nil
		}
		if !errors.Is(lastErr, ErrConflict) {
			return "", lastErr
		}
		h.logger.Warn().Str("func", "*httpBinClient.CreateBin").Str("bin_id", id).Msg("bin id collision, retrying with a new id")
	}

	return "", fmt.Errorf("create bin: %w", lastErr)
}

// GetBin implements [BinClient].
func (h *httpBinClient) GetBin(ctx context.Context, id string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/api/bins/{id}")
	if err != nil {
		return "", fmt.Errorf("%w: get bin request: %w", ErrRemoteUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	bin, err := models.DecodeBin(resp.Body())
	if err != nil {
		return "", ErrInvalidFormat
	}
	return bin.Data, nil
}

// UpdateBin implements [BinClient].
func (h *httpBinClient) UpdateBin(ctx context.Context, id, blob string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", id).
		SetBody(models.Bin{Data: blob}).
		Put("/api/bins/{id}")
	if err != nil {
		return fmt.Errorf("%w: update bin request: %w", ErrRemoteUnavailable, err)
	}

	return mapHTTPError(resp)
}
