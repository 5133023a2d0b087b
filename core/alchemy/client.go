package alchemy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"nft-reconciler/core/pagination"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const (
	endpointNFTs        = "getNFTs"
	endpointCollections = "getNFTsByCollection"

	// maxErrorBody caps how much of a failed response body ends up in an error.
	maxErrorBody = 4 << 10
)

var tracer = otel.Tracer("nft-reconciler/core/alchemy")

// Client talks to the Alchemy NFT API.
type Client struct {
	httpClient *http.Client
	config     Config
	logger     *zap.Logger
}

// NewClient creates a client with a keep-alive transport and a fixed request timeout.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 10
	}
	if cfg.MaxNFTsPerContract <= 0 {
		cfg.MaxNFTsPerContract = 10
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeoutDuration,
			Transport: transport,
		},
		config: cfg,
		logger: logger.With(zap.String("component", "alchemy")),
	}
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// FetchPage fetches one page of the NFTs held by req.Owner.
func (c *Client) FetchPage(ctx context.Context, req PageRequest) (*AssetPage, error) {
	if req.Owner == "" {
		return nil, ErrEmptyOwner
	}

	ctx, span := tracer.Start(ctx, "alchemy.FetchPage")
	defer span.End()
	span.SetAttributes(
		attribute.String("nft.owner", req.Owner),
		attribute.String("nft.contract", req.ContractAddress),
		attribute.Bool("nft.continuation", req.PageKey != ""),
	)

	params := url.Values{}
	params.Set("owner", req.Owner)
	params.Set("withMetadata", "true")
	if req.ContractAddress != "" {
		params.Add("contractAddresses[]", req.ContractAddress)
	}
	if req.PageKey != "" {
		params.Set("pageKey", req.PageKey)
	}

	var page AssetPage
	if err := c.get(ctx, endpointNFTs, params, &page); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("nft.page_size", len(page.OwnedNFTs)))
	c.logger.Debug("Fetched NFT page",
		zap.String("owner", req.Owner),
		zap.Int("assets", len(page.OwnedNFTs)),
		zap.Int("total_count", page.TotalCount),
		zap.Bool("has_more", page.HasMore()),
	)

	return &page, nil
}

// FetchCollections fetches the owner's NFTs grouped by contract.
// The endpoint is not paginated. maxNFTsPerContract <= 0 uses the configured default.
func (c *Client) FetchCollections(ctx context.Context, owner string, maxNFTsPerContract int) ([]Collection, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}
	if maxNFTsPerContract <= 0 {
		maxNFTsPerContract = c.config.MaxNFTsPerContract
	}

	ctx, span := tracer.Start(ctx, "alchemy.FetchCollections")
	defer span.End()
	span.SetAttributes(
		attribute.String("nft.owner", owner),
		attribute.Int("nft.max_per_contract", maxNFTsPerContract),
	)

	params := url.Values{}
	params.Set("owner", owner)
	params.Set("maxNFTsPerContract", strconv.Itoa(maxNFTsPerContract))

	var resp CollectionResponse
	if err := c.get(ctx, endpointCollections, params, &resp); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	c.logger.Debug("Fetched collections",
		zap.String("owner", owner),
		zap.Int("collections", len(resp.Collections)),
	)

	return resp.Collections, nil
}

// PageFetcher fetches one page of an owner's assets. *Client implements it.
type PageFetcher interface {
	FetchPage(ctx context.Context, req PageRequest) (*AssetPage, error)
}

// NewPager returns a non-restartable pager over every page of the listing described by req.
// req.PageKey, if set, is ignored: the pager always starts from the first page.
func NewPager(fetcher PageFetcher, req PageRequest, cfg pagination.Config) *pagination.Pager[Asset] {
	return pagination.New(func(ctx context.Context, pageKey string) ([]Asset, string, error) {
		r := req
		r.PageKey = pageKey
		page, err := fetcher.FetchPage(ctx, r)
		if err != nil {
			return nil, "", err
		}
		return page.OwnedNFTs, page.PageKey, nil
	}, cfg)
}

// endpointURL builds {base}/{apiKey}/v1/{endpoint}/.
func (c *Client) endpointURL(endpoint string) string {
	base := strings.TrimRight(c.config.BaseURL, "/")
	return fmt.Sprintf("%s/%s/v1/%s/", base, url.PathEscape(c.config.APIKey), endpoint)
}

// get performs a GET and decodes a JSON body into out.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	start := time.Now()
	defer func() {
		apiRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	reqURL := c.endpointURL(endpoint) + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		apiErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		apiRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		c.logger.Warn("NFT API request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return &NetworkError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	apiRequestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		class := classifyStatus(resp.StatusCode)
		apiErrorsTotal.WithLabelValues(string(class)).Inc()

		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		message := strings.TrimSpace(string(body))
		if message == "" {
			message = resp.Status
		}

		c.logger.Warn("NFT API returned error status",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("error_class", string(class)),
		)
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Class:      class,
			Message:    message,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// A timeout while streaming the body is still a transport failure.
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			apiErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
			return &NetworkError{Endpoint: endpoint, Err: err}
		}
		apiErrorsTotal.WithLabelValues(string(ErrorClassDecode)).Inc()
		return &APIError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Class:      ErrorClassDecode,
			Message:    "malformed response body",
			Err:        err,
		}
	}

	return nil
}
