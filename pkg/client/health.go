package client

import "context"

// Health checks the liveness of the API
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.doRequest(ctx, "GET", "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// Ready checks that the API can reach its database
func (c *Client) Ready(ctx context.Context) (*ReadinessResponse, error) {
	var ready ReadinessResponse
	if err := c.doRequest(ctx, "GET", "/readyz", nil, &ready); err != nil {
		return nil, err
	}
	return &ready, nil
}

// Info returns the service metadata served at the root path
func (c *Client) Info(ctx context.Context) (*ServiceInfo, error) {
	var info ServiceInfo
	if err := c.doRequest(ctx, "GET", "/", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Ping is a simple connectivity test
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Health(ctx)
	return err
}
