package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/shelfsync/internal/identity"
)

func (c *Cli) runLike(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing item id. Usage: shelfsync like <item-id>")
	}
	if c.who.Role == identity.RoleAnonymous {
		return fmt.Errorf("likes require an access token. Pass -token or set SHELFSYNC_TOKEN")
	}

	itemID := args[0]

	if err := c.svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start feed sync: %w", err)
	}
	defer c.svc.Stop()

	if err := c.svc.ToggleLike(ctx, itemID); err != nil {
		return err
	}

	item, ok := c.svc.Feed().Get(itemID)
	if !ok {
		return fmt.Errorf("item %s disappeared from the feed", itemID)
	}

	if item.LikedBy(c.who.UserID) {
		c.io.Printf("✓ Liked %s (%d like(s) total)\n", itemID, len(item.Likes))
	} else {
		c.io.Printf("✓ Unliked %s (%d like(s) total)\n", itemID, len(item.Likes))
	}

	return nil
}
