// Command maps talks to the search service without the editor: it lists,
// fetches and saves maps and runs searches from the command line.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"gridmap/client"
	"gridmap/config"
	"gridmap/core"
	"gridmap/importer"
	"gridmap/validation"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("usage: maps [-server URL] list | get <name> | save <name> <file> | search <file>")

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := config.FromEnv(os.LookupEnv)
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("maps", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		server    = fs.String("server", cfg.ServerURL, "Search service base URL")
		timeout   = fs.Duration("timeout", cfg.Timeout, "Request timeout")
		algorithm = fs.String("alg", string(core.BFS), "Search algorithm for 'search'")
		heuristic = fs.String("heur", string(core.Euclidian), "Heuristic for informed algorithms")
		verbose   = fs.Bool("v", false, "Log requests to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	logger := log.New(io.Discard, "", 0)
	if *verbose {
		logger = log.New(stderr, "maps: ", 0)
	}
	c, err := client.New(*server, client.WithLogger(logger), client.WithTimeout(*timeout))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+time.Second)
	defer cancel()

	switch rest[0] {
	case "list":
		return listMaps(ctx, c, stdout)

	case "get":
		if len(rest) != 2 {
			return errUsage
		}
		return getMap(ctx, c, rest[1], stdout)

	case "save":
		if len(rest) != 3 {
			return errUsage
		}
		return saveMap(ctx, c, rest[1], rest[2], stdout)

	case "search":
		if len(rest) != 2 {
			return errUsage
		}
		alg, err := core.ParseAlgorithm(*algorithm)
		if err != nil {
			return err
		}
		heur, err := core.ParseHeuristic(*heuristic)
		if err != nil {
			return err
		}
		return searchMap(ctx, c, rest[1], alg, heur, stdout)

	default:
		return errUsage
	}
}

func listMaps(ctx context.Context, c *client.Client, w io.Writer) error {
	maps, err := c.GetMaps(ctx)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(maps))
	for name := range maps {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g, err := importer.FromText(maps[name])
		if err != nil {
			fmt.Fprintf(w, "%s\t(malformed: %v)\n", name, err)
			continue
		}
		width, height := g.Size()
		fmt.Fprintf(w, "%s\t%dx%d\n", name, width, height)
	}
	return nil
}

func getMap(ctx context.Context, c *client.Client, name string, w io.Writer) error {
	maps, err := c.GetMaps(ctx)
	if err != nil {
		return err
	}
	text, ok := maps[name]
	if !ok {
		return fmt.Errorf("no map named %q", name)
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err = io.WriteString(w, text)
	return err
}

// readMap loads a map file and checks it is searchable.
func readMap(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	g, err := importer.FromText(string(data))
	if err != nil {
		return "", err
	}
	if err := validation.Endpoints(g); err != nil {
		return "", err
	}
	return string(data), nil
}

func saveMap(ctx context.Context, c *client.Client, name, filename string, w io.Writer) error {
	if err := validation.MapName(name); err != nil {
		return err
	}
	text, err := readMap(filename)
	if err != nil {
		return err
	}
	if err := c.SaveMap(ctx, name, text); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved %s\n", name)
	return nil
}

func searchMap(ctx context.Context, c *client.Client, filename string, alg core.Algorithm, heur core.Heuristic, w io.Writer) error {
	text, err := readMap(filename)
	if err != nil {
		return err
	}
	res, err := c.StartSearch(ctx, client.SearchRequest{Map: text, Algorithm: alg, Heuristic: heur})
	if err != nil {
		return err
	}

	if len(res.Path) == 0 {
		fmt.Fprintf(w, "no path (%d cells visited)\n", len(res.Visited))
		return nil
	}
	steps := make([]string, len(res.Path))
	for i, p := range res.Path {
		steps[i] = p.String()
	}
	fmt.Fprintf(w, "path: %s\n", strings.Join(steps, " "))
	if res.HasCost {
		fmt.Fprintf(w, "cost: %g\n", res.Cost)
	}
	fmt.Fprintf(w, "visited: %d\n", len(res.Visited))
	return nil
}
