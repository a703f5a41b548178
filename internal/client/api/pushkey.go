package api

import (
	"context"
	"sync"
)

// PushKeyProvider resolves the VAPID public key used for push subscriptions.
// A key from configuration wins without any network traffic; otherwise the
// server is asked exactly once and the first definitive answer, including
// "no key", is cached for the lifetime of the process.
type PushKeyProvider struct {
	client     Client
	configured string

	once sync.Once
	key  string
}

// NewPushKeyProvider builds a provider. configured may be empty.
func NewPushKeyProvider(client Client, configured string) *PushKeyProvider {
	return &PushKeyProvider{client: client, configured: configured}
}

// Key returns the push key, or an empty string when none is available.
func (p *PushKeyProvider) Key(ctx context.Context) string {
	if p.configured != "" {
		return p.configured
	}
	p.once.Do(func() {
		key, err := p.client.VapidPublicKey(ctx)
		if err != nil {
			return
		}
		p.key = key
	})
	return p.key
}
