package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/shelfsync/internal/models"
)

func (c *Cli) runFilter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing filter. Usage: shelfsync filter key=value [key=value...]")
	}

	spec, err := parseFilterArgs(args)
	if err != nil {
		return err
	}

	c.io.Println("=== Filtered feed ===")
	c.io.Println()

	if err := c.svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start feed sync: %w", err)
	}
	defer c.svc.Stop()

	if err := c.svc.ApplyFilter(ctx, spec); err != nil {
		return err
	}
	defer c.svc.ClearFilter()

	items := c.svc.Feed().Items()
	c.printItems(items)
	c.io.Printf("Showing %d item(s) matching the filter.\n", len(items))

	return nil
}

// parseFilterArgs собирает условия key=value в спецификацию фильтра
func parseFilterArgs(args []string) (models.FilterSpec, error) {
	var spec models.FilterSpec

	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || value == "" {
			return spec, fmt.Errorf("invalid filter %q: expected key=value", arg)
		}

		switch key {
		case "company":
			spec.CompanyID = value
		case "user":
			spec.UserID = value
		case "account":
			spec.Account = value
		case "account_type":
			spec.AccountType = value
		case "chain":
			spec.Chain = value
		case "chain_type":
			spec.ChainType = value
		case "display_tag":
			spec.DisplayTag = value
		case "photo_tag":
			spec.PhotoTag = value
		case "brand":
			spec.Brand = value
		case "category":
			spec.Category = value
		case "goal":
			spec.GoalID = value
		case "state":
			spec.State = value
		case "city":
			spec.City = value
		case "min_likes":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return spec, fmt.Errorf("invalid min_likes value %q", value)
			}
			spec.MinLikes = n
		case "from":
			ts, err := parseDate(value)
			if err != nil {
				return spec, fmt.Errorf("invalid from date %q: use YYYY-MM-DD", value)
			}
			if spec.Dates == nil {
				spec.Dates = &models.DateRange{}
			}
			spec.Dates.Start = ts
		case "to":
			ts, err := parseDate(value)
			if err != nil {
				return spec, fmt.Errorf("invalid to date %q: use YYYY-MM-DD", value)
			}
			if spec.Dates == nil {
				spec.Dates = &models.DateRange{}
			}
			spec.Dates.End = ts
		default:
			return spec, fmt.Errorf("unknown filter key %q", key)
		}
	}

	return spec, nil
}
