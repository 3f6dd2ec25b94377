package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/alexanderramin/quadro/internal/cli"
	"github.com/alexanderramin/quadro/internal/cli/formatter"
	"github.com/alexanderramin/quadro/internal/config"
	"github.com/alexanderramin/quadro/internal/db"
	"github.com/alexanderramin/quadro/internal/repository"
	"github.com/alexanderramin/quadro/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	configPath, err := configPathFromArgs(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	if !cfg.Color || !isatty.IsTerminal(os.Stdout.Fd()) {
		formatter.SetColorEnabled(false)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database, loc)
	profileRepo := repository.NewSQLiteProfileRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}
	clock := func() time.Time { return time.Now().In(loc) }

	app := &cli.App{
		Projects: service.NewProjectService(projectRepo, uow, observers...),
		Tasks:    service.NewTaskService(taskRepo, projectRepo, observers...),
		Profile:  service.NewProfileService(profileRepo, observers...),
		Board:    service.NewBoardService(taskRepo, projectRepo, profileRepo, clock, observers...),
		Transfer: service.NewTransferService(projectRepo, taskRepo, profileRepo, uow, loc, observers...),

		Config:     cfg,
		ConfigPath: configPath,
		Location:   loc,
		Now:        clock,

		IsInteractive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// configPathFromArgs picks --config out of args before the command tree
// exists, since the services it wires depend on the file's contents.
func configPathFromArgs(args []string) (string, error) {
	var own []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			break
		}
		if strings.HasPrefix(a, "--config=") {
			own = append(own, a)
		} else if a == "--config" && i+1 < len(args) {
			own = append(own, a, args[i+1])
			i++
		}
	}

	fs := pflag.NewFlagSet("quadro", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	path := fs.String("config", "", "")
	if err := fs.Parse(own); err != nil {
		return "", err
	}
	if *path != "" {
		return *path, nil
	}
	return config.DefaultPath()
}
