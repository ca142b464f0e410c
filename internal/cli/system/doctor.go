package system

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/lininnin/mindtrack/internal/cli"
	"github.com/lininnin/mindtrack/internal/constants"
	"github.com/lininnin/mindtrack/internal/dailylog"
	"github.com/lininnin/mindtrack/internal/goals"
	"github.com/lininnin/mindtrack/internal/utils"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	// Check 1: store reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n   Error: %v\n", err)
		hasError = true
	} else if _, err := ctx.Store.GetAllCategories(); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
	}

	// Check 2: goal files parseable
	if _, err := goals.NewRepository(ctx.Cfg.GoalsPath(), ctx.Cfg.CurrentGoalsPath(), ctx.Cfg.TodayGoalsPath()); err != nil {
		fmt.Printf("❌ Goal files: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Goal files: OK\n")
	}

	// Check 3: daily log file parseable
	if _, err := dailylog.NewRepository(ctx.Cfg.DailyLogPath()).FindByDate(utils.Today()); err != nil {
		fmt.Printf("❌ Daily log file: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Daily log file: OK\n")
	}

	// Check 4: single running instance. The repositories assume one writer;
	// a second instance can silently lose whole-file writes.
	if err := checkSingleInstance(); err != nil {
		fmt.Printf("⚠ Single instance: WARNING\n   %v\n", err)
	} else {
		fmt.Printf("✓ Single instance: OK\n")
	}

	// Check 5: clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ Clock: FAIL\n   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkSingleInstance() error {
	procs, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	count := 0
	for _, p := range procs {
		name := strings.TrimSuffix(p.Executable(), ".exe")
		if name == constants.AppName && p.Pid() != os.Getpid() {
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("found %d other running %s instance(s); concurrent writes can lose data", count, constants.AppName)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
