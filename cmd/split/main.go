// Command split prints how a basket is divided between couriers.
//
// Usage:
//
//	split -catalog catalog.json Item1 Item2 Item3
//	split -catalog catalog.yaml -basket basket.json
//
// The basket file is a JSON array of item names. Exit codes: 0 on success,
// 1 on usage or I/O errors, 2 when an item is missing from the catalog, 3 when
// some item has no courier.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"basketsplit/internal/adapters/out/catalogfile"
	"basketsplit/internal/adapters/out/snapshot"
	"basketsplit/internal/core/application/usecases/queries"
	"basketsplit/internal/core/domain/services"
	"basketsplit/internal/pkg/metrics"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitUnknownItem = 2
	exitNoCoverage  = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("split", flag.ContinueOnError)
	fs.SetOutput(stderr)
	catalogPath := fs.String("catalog", "", "catalog file (JSON, or YAML by .yaml/.yml extension)")
	basketPath := fs.String("basket", "", "basket file (JSON array of item names); items may also be given as arguments")
	asJSON := fs.Bool("json", false, "print the assignment as JSON")
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	if *catalogPath == "" {
		fmt.Fprintln(stderr, "split: -catalog is required")
		fs.Usage()
		return exitFailure
	}

	items, err := basketItems(*basketPath, fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "split: %v\n", err)
		return exitFailure
	}

	ctx := context.Background()
	c, err := catalogfile.NewLoader(*catalogPath).Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "split: %v\n", err)
		return exitFailure
	}

	query, err := queries.NewSplitBasketQuery(items)
	if err != nil {
		fmt.Fprintf(stderr, "split: invalid basket: %v\n", err)
		return exitFailure
	}

	handler := queries.NewSplitBasketQueryHandler(snapshot.NewCatalogSnapshot(c), metrics.NewNop())
	response, err := handler.Handle(ctx, query)
	if err != nil {
		fmt.Fprintf(stderr, "split: %v\n", err)
		switch {
		case errors.Is(err, services.ErrUnknownItem):
			return exitUnknownItem
		case errors.Is(err, services.ErrNoCoverage):
			return exitNoCoverage
		default:
			return exitFailure
		}
	}

	if err = printAssignment(stdout, response, *asJSON); err != nil {
		fmt.Fprintf(stderr, "split: %v\n", err)
		return exitFailure
	}
	return exitOK
}

func basketItems(path string, args []string) ([]string, error) {
	if path == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, errors.New("give items either with -basket or as arguments, not both")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []string
	if err = json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("basket file %s: %w", path, err)
	}
	return items, nil
}

type jsonDelivery struct {
	Courier string   `json:"courier"`
	Items   []string `json:"items"`
}

func printAssignment(w io.Writer, response queries.SplitBasketQueryResponse, asJSON bool) error {
	if asJSON {
		out := make([]jsonDelivery, len(response.Deliveries))
		for i, d := range response.Deliveries {
			out[i] = jsonDelivery{Courier: d.Courier, Items: d.Items}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, d := range response.Deliveries {
		if _, err := fmt.Fprintf(w, "%s: %s\n", d.Courier, strings.Join(d.Items, ", ")); err != nil {
			return err
		}
	}
	return nil
}
