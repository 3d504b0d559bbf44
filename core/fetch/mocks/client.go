package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of fetch.Client
type Client struct {
	mock.Mock
}

func (m *Client) Get(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if body, ok := args.Get(0).([]byte); ok {
		return body, args.Error(1)
	}
	return nil, args.Error(1)
}
