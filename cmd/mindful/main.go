// Command mindful is a small terminal companion for the MindfulLearner API.
//
//	mindful signin -u ada -p secret
//	mindful meditate -token <jwt> -notes "after class"
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
	"time"

	"mindfullearner/internal/client"
	"mindfullearner/internal/meditation"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "mindful:", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: mindful <signin|meditate> [flags]")

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch args[0] {
	case "signin":
		return signin(ctx, args[1:], out)
	case "meditate":
		return meditate(ctx, args[1:], out)
	default:
		return errUsage
	}
}

func serverFlag(fs *flag.FlagSet) *string {
	def := os.Getenv("MINDFUL_SERVER")
	if def == "" {
		def = "http://localhost:3001"
	}
	return fs.String("server", def, "API base URL")
}

func signin(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("signin", flag.ContinueOnError)
	server := serverFlag(fs)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	c := client.New(client.Config{BaseURL: *server})
	if _, err := c.Signin(ctx, *username, *password); err != nil {
		return err
	}
	fmt.Fprintln(out, c.Token())
	return nil
}

// meditate runs a countdown in the terminal. Ctrl-C stops early and still
// logs the elapsed minutes.
func meditate(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("meditate", flag.ContinueOnError)
	server := serverFlag(fs)
	token := fs.String("token", os.Getenv("MINDFUL_TOKEN"), "session token from signin")
	notes := fs.String("notes", "", "notes saved with the session")
	length := fs.Duration("length", meditation.SessionLength, "session length")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *token == "" {
		return errors.New("a token is required (-token or MINDFUL_TOKEN)")
	}

	c := client.New(client.Config{BaseURL: *server})
	c.SetToken(*token)

	timer := meditation.NewTimer(c, meditation.WithLength(*length))
	timer.SetNotes(*notes)
	if err := timer.Start(); err != nil {
		return err
	}
	fmt.Fprintf(out, "meditating for %s, Ctrl-C to stop\n", *length)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	submitted, err := timer.Run(ctx, ticker.C)
	if err != nil {
		return err
	}
	if submitted {
		fmt.Fprintln(out, "session logged")
	} else {
		fmt.Fprintln(out, "nothing to log")
	}
	return nil
}
