package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/planboard/internal/cli"
	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	if cfg.InMemory() {
		fmt.Fprintln(os.Stderr, "planboard: using an in-memory board, changes are not saved")
	}

	store := repository.NewSQLiteKVStore(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	board := service.NewBoardService(store,
		service.WithClock(cfg.Clock()),
		service.WithUnitOfWork(db.NewSQLiteUnitOfWork(database)),
		service.WithObserver(observer),
	)

	app := &cli.App{
		Board: board,
		Store: store,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
