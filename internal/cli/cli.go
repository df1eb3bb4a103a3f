// Package cli implements the shelfsync command line commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/iudanet/shelfsync/internal/feedsync"
	"github.com/iudanet/shelfsync/internal/identity"
	"github.com/iudanet/shelfsync/internal/iocli"
)

type Cli struct {
	svc *feedsync.Service
	who *identity.Identity
	io  iocli.IO
}

func New(svc *feedsync.Service, who *identity.Identity, io iocli.IO) *Cli {
	return &Cli{
		svc: svc,
		who: who,
		io:  io,
	}
}

func (c *Cli) Run(ctx context.Context, command string, args []string) {
	var err error

	switch command {
	case "sync":
		err = c.runSync(ctx)
	case "watch":
		err = c.runWatch(ctx)
	case "filter":
		err = c.runFilter(ctx, args)
	case "like":
		err = c.runLike(ctx, args)
	case "status":
		err = c.runStatus(ctx)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func PrintUsage() {
	fmt.Println("shelfsync - offline-first retail display feed")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shelfsync [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sync                 Load the feed (cache first) and print it")
	fmt.Println("  watch                Keep the feed live, printing updates as they arrive")
	fmt.Println("  filter key=value...  Show a filtered slice of the feed")
	fmt.Println("  like <item-id>       Toggle your like on an item")
	fmt.Println("  status               Show cache and listener state")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -server  Server URL (default http://localhost:8080)")
	fmt.Println("  -db      Path to local database file")
	fmt.Println("  -redis   Redis address; used instead of the local file when set")
	fmt.Println("  -token   Access token (or SHELFSYNC_TOKEN env)")
	fmt.Println("  -page    Page size for feed pagination")
	fmt.Println()
	fmt.Println("Filter keys: company, user, account, account_type, chain, chain_type,")
	fmt.Println("  display_tag, photo_tag, brand, category, goal, state, city,")
	fmt.Println("  min_likes, from (YYYY-MM-DD), to (YYYY-MM-DD)")
}
