package cli

import (
	"context"
	"fmt"
)

// Sync runs one reconciliation pass over pending drafts and reports the
// outcome.
func (a *App) Sync(ctx context.Context) error {
	result := a.syncer.SyncPending(ctx)
	if result.Skipped != "" {
		printlnFn("Sync skipped:", result.Skipped)
		return nil
	}
	if result.Total == 0 {
		printlnFn("Nothing to sync.")
		return nil
	}
	printlnFn(fmt.Sprintf("Synced %d of %d drafts (%d failed)", result.Synced, result.Total, result.Failed))
	return nil
}

// PushKey prints the VAPID public key used for web push subscriptions,
// either from configuration or discovered from the server.
func (a *App) PushKey(ctx context.Context) error {
	key := a.pushKeys.Key(ctx)
	if key == "" {
		printlnFn("No push key available.")
		return nil
	}
	printlnFn("VAPID public key:", key)
	return nil
}
