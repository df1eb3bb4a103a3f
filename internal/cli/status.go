package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/shelfsync/internal/identity"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Feed Status ===")
	c.io.Println()

	if c.who.Role == identity.RoleAnonymous {
		c.io.Println("Identity: anonymous (public feed only)")
	} else {
		c.io.Printf("Identity: %s (role %s", c.who.UserID, c.who.Role)
		if c.who.CompanyID != "" {
			c.io.Printf(", company %s", c.who.CompanyID)
		}
		c.io.Println(")")
	}
	c.io.Println()

	if err := c.svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start feed sync: %w", err)
	}
	defer c.svc.Stop()

	c.io.Printf("Feed items:     %d\n", c.svc.Feed().Len())
	c.io.Printf("Listener state: %s\n", c.svc.Listener().State())

	if mark := c.svc.Listener().HighWater(); !mark.IsZero() {
		c.io.Printf("Last change:    %s\n", mark.Format(time.RFC3339))
	} else {
		c.io.Println("Last change:    never")
	}

	if newest := c.svc.Feed().NewestKey(); !newest.IsZero() {
		c.io.Printf("Newest item:    %s\n", newest.Format(time.RFC3339))
	}

	return nil
}
