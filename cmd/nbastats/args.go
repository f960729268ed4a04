package main

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/preston-bernstein/nba-season-stats/internal/domain/stats"
	"github.com/preston-bernstein/nba-season-stats/internal/season"
)

// cliArgs mirrors the four positional arguments.
type cliArgs struct {
	BeginningYear string `validate:"required"`
	EndYear       string `validate:"required"`
	Kind          string `validate:"oneof=players teams"`
	OutputPath    string `validate:"required"`
}

// parsedArgs is cliArgs after validation.
type parsedArgs struct {
	Kind       stats.Kind
	Years      []int
	OutputPath string
}

func parseArgs(args []string, years season.Validator) (parsedArgs, error) {
	raw := cliArgs{
		BeginningYear: args[0],
		EndYear:       args[1],
		Kind:          args[2],
		OutputPath:    args[3],
	}
	if err := validator.New().Struct(raw); err != nil {
		return parsedArgs{}, fmt.Errorf("invalid arguments: %w", err)
	}

	begin, err := years.Parse(raw.BeginningYear)
	if err != nil {
		return parsedArgs{}, fmt.Errorf("beginning_year: %w", err)
	}
	end, err := years.Parse(raw.EndYear)
	if err != nil {
		return parsedArgs{}, fmt.Errorf("end_year: %w", err)
	}
	kind, err := stats.ParseKind(raw.Kind)
	if err != nil {
		return parsedArgs{}, err
	}

	return parsedArgs{
		Kind:       kind,
		Years:      season.Range(begin, end),
		OutputPath: filepath.Clean(raw.OutputPath),
	}, nil
}

func kindNames() []string {
	names := make([]string, 0, len(stats.Kinds()))
	for _, k := range stats.Kinds() {
		names = append(names, string(k))
	}
	return names
}
