package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Feed ===")
	c.io.Println()

	if err := c.svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start feed sync: %w", err)
	}
	defer c.svc.Stop()

	items := c.svc.Feed().Items()
	c.printItems(items)
	c.io.Printf("Showing %d item(s).\n", len(items))

	return nil
}
