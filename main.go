package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"schedsim/api"
	"schedsim/config"
	"schedsim/internal/load"
	"schedsim/internal/report"
	"schedsim/internal/sched"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	if len(os.Args) == 2 && os.Args[1] == "serve" {
		log.Fatal(serve(cfg))
	}

	f, closeFile, err := openProcessingFile(os.Args...)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFile()

	processes, err := load.Processes(f)
	if err != nil {
		log.Fatal(err)
	}

	priority, err := sched.SchedulePriority(processes)
	if err != nil {
		log.Fatal(err)
	}
	report.Render(os.Stdout, "Preemptive priority", processes, priority)

	rr, err := sched.ScheduleRoundRobin(processes, cfg.RoundRobinTimeQuantum)
	if err != nil {
		log.Fatal(err)
	}
	report.Render(os.Stdout, fmt.Sprintf("Round-robin (quantum %d)", cfg.RoundRobinTimeQuantum), processes, rr)
}

func serve(cfg *config.SchedulerConfig) error {
	app := fiber.New()
	handler := api.NewSchedulerHandlerImpl(cfg)

	v1 := app.Group("/api").Group("/v1")
	v1.Post("/priority", handler.Priority)
	v1.Post("/rr", handler.RoundRobin)
	v1.Post("/all", handler.AllAlgorithms)

	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}

func openProcessingFile(args ...string) (*os.File, func(), error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("usage: %s <processes.csv> | serve", args[0])
	}
	f, err := os.Open(args[1])
	if err != nil {
		return nil, nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}
