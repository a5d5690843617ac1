// Package api exposes the scheduling simulators over HTTP.
package api

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/sched"
)

type SchedulerHandler interface {
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := sched.SchedulePriority(toProcesses(request.Jobs))
	if err != nil {
		return badRequest(ctx, err)
	}

	return ctx.JSON(toResponse("priority", result, request.Jobs))
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	result, err := sched.ScheduleRoundRobin(toProcesses(request.Jobs), s.quantum(request))
	if err != nil {
		return badRequest(ctx, err)
	}

	return ctx.JSON(toResponse("round_robin", result, request.Jobs))
}

// AllAlgorithms runs both policies over the same input. Each simulation
// owns its run state, so the two can execute concurrently.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}

	var (
		wg                 sync.WaitGroup
		priority, rr       *sched.Result
		priorityErr, rrErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		priority, priorityErr = sched.SchedulePriority(toProcesses(request.Jobs))
	}()
	go func() {
		defer wg.Done()
		rr, rrErr = sched.ScheduleRoundRobin(toProcesses(request.Jobs), s.quantum(request))
	}()
	wg.Wait()

	if priorityErr != nil {
		return badRequest(ctx, priorityErr)
	}
	if rrErr != nil {
		return badRequest(ctx, rrErr)
	}

	return ctx.JSON(responses.AllResponse{
		Priority:   toResponse("priority", priority, request.Jobs),
		RoundRobin: toResponse("round_robin", rr, request.Jobs),
	})
}

func (s *SchedulerHandlerImpl) quantum(request *requests.ScheduleRequest) int64 {
	if request.TimeQuantum != 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, errors.New("invalid request format")
	}
	return &request, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func toProcesses(jobs []requests.Job) []sched.Process {
	processes := make([]sched.Process, len(jobs))
	for i, job := range jobs {
		processes[i] = sched.Process{
			PID:           job.ProcessID,
			ArrivalTime:   job.ArrivalTime,
			BurstDuration: job.BurstTime,
			Priority:      job.Priority,
		}
	}
	return processes
}

func toResponse(algorithm string, result *sched.Result, jobs []requests.Job) responses.ScheduleResponse {
	gantt := make([]responses.SegmentResponse, len(result.Gantt))
	for i, segment := range result.Gantt {
		gantt[i] = responses.SegmentResponse{
			ProcessID: segment.PID,
			Start:     segment.Start,
			Stop:      segment.Stop,
			Idle:      segment.PID == sched.IdlePID,
		}
	}

	details := make([]responses.ProcessResponse, len(jobs))
	for i, job := range jobs {
		times := result.Times[job.ProcessID]
		details[i] = responses.ProcessResponse{
			ProcessID:      job.ProcessID,
			CompletionTime: times.Completion,
			WaitingTime:    times.Waiting,
			TurnAroundTime: times.Turnaround,
		}
	}

	return responses.ScheduleResponse{
		Algorithm:             algorithm,
		Gantt:                 gantt,
		AverageWaitingTime:    result.AvgWaiting,
		AverageTurnAroundTime: result.AvgTurnaround,
		Details:               details,
	}
}
