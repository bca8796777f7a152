package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gridcal/src-core/grid"
	"gridcal/src-core/model"
	"gridcal/src-core/store"
	"gridcal/src-core/utils"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/ncruces/go-strftime"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
)

func init() {
	if err := godotenv.Load(); err != nil {
		slog.Info(err.Error())
	}
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

// plainFormatter renders cells for the terminal: the summary on an
// occasion's first cell, "^" on continuations, "." when empty.
type plainFormatter struct{}

var _ grid.Formatter = plainFormatter{}

func (plainFormatter) Format(cell grid.Cell) string {
	switch {
	case cell.Empty():
		return "."
	case cell.Continuation:
		return "^"
	default:
		occasion := cell.Placement.Occasion
		if occasion.Event != nil {
			return occasion.Event.Summary
		}
		return occasion.ID
	}
}

func main() {
	config := utils.NewConfig()

	rawDB, err := sql.Open(sqliteshim.ShimName, config.GetDBPath()+"?mode=rwc")
	if err != nil {
		slog.Error("cannot open sqlite database", "error", err)
		os.Exit(1)
	}
	defer rawDB.Close()
	bunDB := bun.NewDB(rawDB, sqlitedialect.New())
	bunDB.AddQueryHook(bundebug.NewQueryHook(
		bundebug.FromEnv("BUNDEBUG"),
	))

	if err := model.CreateSchema(bunDB); err != nil {
		slog.Error("can't create database schema", "error", err)
		os.Exit(1)
	}

	// which day to render; any trailing args are a natural-language day
	// expression ("tomorrow", "next friday", ...)
	day := time.Now().In(config.GetLocation())
	if args := os.Args[1:]; len(args) > 0 {
		parser := when.New(nil)
		parser.Add(en.All...)
		parser.Add(common.All...)
		expr := strings.Join(args, " ")
		result, err := parser.Parse(expr, day)
		switch {
		case err != nil:
			slog.Error("can't parse day argument", "arg", expr, "error", err)
			os.Exit(1)
		case result == nil:
			slog.Error("day argument not understood", "arg", expr)
			os.Exit(1)
		default:
			day = result.Time
		}
	}

	occasionStore := store.New(bunDB)
	occasions, err := occasionStore.DailyOccasions(context.Background(), day, "")
	if err != nil {
		slog.Error("can't load daily occasions", "error", err)
		os.Exit(1)
	}
	slog.Info("rendering day", "day", day.Format(time.DateOnly), "occasions", len(occasions))

	table, err := grid.Build(day, config.GridConfig(), occasions, grid.NewCycleSet())
	if err != nil {
		slog.Error("can't build timeslot grid", "error", err)
		os.Exit(1)
	}

	formatter := plainFormatter{}
	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, formatter.Format(cell))
		}
		fmt.Printf("%s  %s\n", strftime.Format(config.GetTimeFormat(), row.Key), strings.Join(cells, "  "))
	}

	// optionally keep the process up so the layout counters can be
	// scraped after a render
	if port := config.GetMetricsPort(); port != "" {
		go func() {
			muxer := http.NewServeMux()
			muxer.Handle("GET /metrics", promhttp.Handler())
			if err := http.ListenAndServe(":"+port, muxer); err != nil {
				slog.Error("cannot start metrics server", "error", err)
				os.Exit(1)
			}
		}()
		slog.Info("metrics listener up, press Ctrl+C to exit", "port", port)

		closeSignalChan := make(chan os.Signal, 1)
		signal.Notify(closeSignalChan, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		<-closeSignalChan
	}
}
