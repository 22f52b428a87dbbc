// Command dungeongen is a small demo driver for the generation pipeline:
// prog [bsp|drunkards] [width] [height] [seed] [wiggle]
//
// It writes an ASCII rendering of the generated map to stdout followed by
// a statistics block. Exit codes: 0 success, 1 generation failure, 2
// usage error.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dshills/dungeoneer/pkg/dungeon"
	"github.com/dshills/dungeoneer/pkg/request"
)

const usage = `usage: dungeongen [bsp|drunkards] [width] [height] [seed] [wiggle]

  bsp|drunkards  layout algorithm to run
  width, height  map dimensions in tiles (>= 8)
  seed           64-bit unsigned generation seed
  wiggle         drunkards-only: percent chance (0-100) to change
                 direction each step; ignored for bsp
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr *os.File) int {
	if len(args) < 4 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	req, err := parseRequest(args)
	if err != nil {
		fmt.Fprintf(stderr, "usage error: %v\n", err)
		fmt.Fprint(stderr, usage)
		return 2
	}

	m, err := dungeon.Generate(context.Background(), req)
	if err != nil {
		fmt.Fprintf(stderr, "generation failed: %v\n", err)
		return 1
	}

	fmt.Fprint(stdout, dungeon.RenderText(m))
	fmt.Fprintln(stdout)
	fmt.Fprint(stdout, dungeon.RenderStats(m))
	return 0
}

func parseRequest(args []string) (*request.Request, error) {
	var algo request.AlgorithmID
	switch args[0] {
	case "bsp":
		algo = request.BSP
	case "drunkards":
		algo = request.Drunkard
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want bsp or drunkards)", args[0])
	}

	width, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, fmt.Errorf("width: %w", err)
	}
	height, err := strconv.Atoi(args[2])
	if err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	seed, err := strconv.ParseUint(args[3], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	req := request.New(width, height, seed, algo)

	if algo == request.Drunkard && len(args) >= 5 {
		wiggle, err := strconv.Atoi(args[4])
		if err != nil {
			return nil, fmt.Errorf("wiggle: %w", err)
		}
		params := request.DefaultDrunkardParams()
		params.WigglePercent = wiggle
		req.Params.Drunkard = params
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}
