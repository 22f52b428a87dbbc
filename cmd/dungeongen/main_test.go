package main

import (
	"testing"

	"github.com/dshills/dungeoneer/pkg/request"
)

func TestParseRequest_BSPDefaultsParams(t *testing.T) {
	req, err := parseRequest([]string{"bsp", "40", "24", "99"})
	if err != nil {
		t.Fatalf("parseRequest returned error: %v", err)
	}
	if req.Algorithm != request.BSP || req.Width != 40 || req.Height != 24 || req.Seed != 99 {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestParseRequest_DrunkardsAppliesWiggle(t *testing.T) {
	req, err := parseRequest([]string{"drunkards", "40", "24", "1", "75"})
	if err != nil {
		t.Fatalf("parseRequest returned error: %v", err)
	}
	if req.Params.Drunkard == nil || req.Params.Drunkard.WigglePercent != 75 {
		t.Fatalf("expected wiggle 75 to be applied, got %+v", req.Params.Drunkard)
	}
}

func TestParseRequest_RejectsUnknownAlgorithm(t *testing.T) {
	if _, err := parseRequest([]string{"maze", "40", "24", "1"}); err == nil {
		t.Fatal("expected an error for an unknown algorithm name")
	}
}

func TestParseRequest_RejectsNonNumericWidth(t *testing.T) {
	if _, err := parseRequest([]string{"bsp", "wide", "24", "1"}); err == nil {
		t.Fatal("expected an error for a non-numeric width")
	}
}

func TestParseRequest_RejectsDimensionsBelowMinimum(t *testing.T) {
	if _, err := parseRequest([]string{"bsp", "4", "4", "1"}); err == nil {
		t.Fatal("expected Validate to reject dimensions below the minimum")
	}
}
