package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runWatch(ctx context.Context) error {
	c.io.Println("=== Watching feed ===")
	c.io.Println("Press Ctrl+C to stop.")
	c.io.Println()

	if err := c.svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start feed sync: %w", err)
	}
	defer c.svc.Stop()

	c.printItems(c.svc.Feed().Items())

	// Перепечатываем ленту при каждом изменении
	updates := make(chan struct{}, 1)
	c.svc.Feed().OnChange(func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	})

	for {
		select {
		case <-ctx.Done():
			c.io.Println()
			c.io.Println("Stopped.")
			return nil
		case <-updates:
			c.io.Println("--- Feed updated ---")
			c.io.Println()
			c.printItems(c.svc.Feed().Items())
		}
	}
}
