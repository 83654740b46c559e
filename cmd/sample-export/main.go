package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"withdrawal-report/internal/services"
	"withdrawal-report/internal/workbook"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	out := flag.String("out", "sample_withdrawals.xlsx", "path of the workbook to create (must not exist)")
	rows := flag.Int("rows", 500, "number of withdrawal rows")
	merchants := flag.Int("merchants", 8, "number of distinct merchants")
	start := flag.String("start", "2024-01-01", "first date, YYYY-MM-DD")
	end := flag.String("end", "2024-03-31", "last date, YYYY-MM-DD")
	seed := flag.Uint64("seed", 0, "random seed, 0 for a random one")
	flag.Parse()

	startDate, err := time.Parse(services.CanonicalDateLayout, *start)
	if err != nil {
		logger.Error("Invalid start date", "start", *start, "error", err)
		os.Exit(2)
	}
	endDate, err := time.Parse(services.CanonicalDateLayout, *end)
	if err != nil {
		logger.Error("Invalid end date", "end", *end, "error", err)
		os.Exit(2)
	}
	if *rows <= 0 {
		logger.Error("Row count must be positive", "rows", *rows)
		os.Exit(2)
	}

	gen := services.NewSampleGenerator(*seed, *merchants)
	data := gen.Generate(startDate, endDate, *rows)

	if err := workbook.NewWriter().WriteRows(*out, workbook.TransactionsSheet, gen.Columns(), data); err != nil {
		logger.Error("Failed to write sample export", "out", *out, "error", err)
		os.Exit(1)
	}

	logger.Info("Sample export written", "out", *out, "rows", len(data), "merchants", gen.Merchants())
	fmt.Println(*out)
}
