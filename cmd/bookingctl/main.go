// Command bookingctl runs a few read-only SDK calls from the shell.
//
//	bookingctl versions
//	bookingctl stations [-country US]
//	bookingctl quick-search -from JFK -to LAX -date 2026-11-20 [-adults 2]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/goccy/go-json"

	"github.com/dharmasatrya/bookingsdk/internal/config"
	"github.com/dharmasatrya/bookingsdk/internal/logging"
	"github.com/dharmasatrya/bookingsdk/pkg/client"
	"github.com/dharmasatrya/bookingsdk/pkg/models"
)

var errUsage = errors.New("usage: bookingctl <versions|stations|quick-search> [flags]")

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logging.Init(cfg.Logging())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, cfg.Client); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer, cfg client.Config, opts ...client.Option) error {
	if len(args) == 0 {
		return errUsage
	}

	c, err := client.New(cfg, opts...)
	if err != nil {
		return err
	}
	defer c.Close()

	switch args[0] {
	case "versions":
		return printJSON(out, c.APIVersions())
	case "stations":
		return stations(ctx, c, args[1:], out)
	case "quick-search":
		return quickSearch(ctx, c, args[1:], out)
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

func stations(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("stations", flag.ContinueOnError)
	fs.SetOutput(out)
	country := fs.String("country", "", "filter by 2-letter country code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := models.StationListRequest{}
	if *country != "" {
		req.CountryCode = country
	}
	resp, err := c.Navigation().GetStations(ctx, req)
	if err != nil {
		return err
	}
	return printBody(out, resp.Body)
}

func quickSearch(ctx context.Context, c *client.Client, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("quick-search", flag.ContinueOnError)
	fs.SetOutput(out)
	from := fs.String("from", "", "origin airport code")
	to := fs.String("to", "", "destination airport code")
	date := fs.String("date", "", "departure date (YYYY-MM-DD)")
	adultCount := fs.Int("adults", 1, "adult passengers")
	children := fs.Int("children", 0, "child passengers")
	infants := fs.Int("infants", 0, "infant passengers")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pax := models.PassengerCounts{Adults: *adultCount, Children: *children, Infants: *infants}
	resp, err := c.Availability().QuickSearch(ctx, *from, *to, *date, pax)
	if err != nil {
		return err
	}
	return printBody(out, resp.Body)
}

func printBody(out io.Writer, body []byte) error {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		_, werr := out.Write(body)
		return werr
	}
	return printJSON(out, v)
}

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
