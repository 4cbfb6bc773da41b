// Command recipepage opens a recipe page against the bookmarks gRPC service,
// prints the bookmark control and optionally presses it.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	grpcserver "github.com/atinyakov/fridgebook/internal/app/server/grpc"
	"github.com/atinyakov/fridgebook/internal/bookmark"
	"github.com/atinyakov/fridgebook/internal/logger"
	"github.com/atinyakov/fridgebook/internal/session"
)

type options struct {
	Address  string
	Token    string
	FridgeID string
	RecipeID string
	Toggle   bool
	LogLevel string
}

func parseArgs(args []string, usage io.Writer) (*options, error) {
	o := &options{}
	fs := flag.NewFlagSet("recipepage", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.StringVar(&o.Address, "a", "localhost:3200", "gRPC server address")
	fs.StringVar(&o.Token, "token", "", "session token or Firebase ID token; empty starts an anonymous session")
	fs.StringVar(&o.FridgeID, "fridge", "", "fridge id, empty for the global collection")
	fs.StringVar(&o.RecipeID, "recipe", "", "recipe id")
	fs.BoolVar(&o.Toggle, "toggle", false, "press the bookmark control once")
	fs.StringVar(&o.LogLevel, "l", "warn", "log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if !bookmark.ValidID(o.RecipeID) || (o.FridgeID != "" && !bookmark.ValidID(o.FridgeID)) {
		return nil, fmt.Errorf("invalid recipe reference %q/%q", o.FridgeID, o.RecipeID)
	}
	return o, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		panic(err)
	}

	log := logger.New()
	if err := log.Init(opts.LogLevel); err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Log.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(opts.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(err)
	}
	defer conn.Close()

	if err := run(ctx, grpcserver.NewBookmarksClient(conn), opts, os.Stdout, log.Log); err != nil {
		log.Log.Error("recipe page failed", zap.Error(err))
	}
}

// run signs in, follows the page through the sign-in and prints the control
// before and after an optional toggle.
func run(ctx context.Context, client grpcserver.BookmarksClient, opts *options, out io.Writer, logger *zap.Logger) error {
	remote := newRemoteBookmarks(client)

	user, token, err := remote.SignIn(ctx, opts.Token)
	if err != nil {
		return err
	}
	if token != opts.Token {
		fmt.Fprintf(out, "session token: %s\n", token)
	}

	auth := session.NewAuth()
	key := bookmark.For(opts.FridgeID, opts.RecipeID)
	page := session.OpenRecipePage(ctx, auth, remote, key, logger)
	defer page.Close()

	auth.Publish(user)
	printButton(out, page)

	if !opts.Toggle {
		return nil
	}
	if _, err := page.Toggle(); err != nil {
		printButton(out, page)
		return err
	}
	printButton(out, page)
	return nil
}

func printButton(out io.Writer, page *session.RecipePage) {
	b := page.Button()
	fmt.Fprintf(out, "%s [%s]\n", page.Key(), b.Label)
}
