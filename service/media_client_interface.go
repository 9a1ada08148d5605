package service

import "context"

// MediaClientInterface defines the contract for artifact uploads
type MediaClientInterface interface {
	Upload(ctx context.Context, data []byte, filename string) (string, error)
}
