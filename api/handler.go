package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	PreemptivePriority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// RegisterRoutes mounts the v1 scheduling endpoints.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	v1.Post("/fcfs", handler.FirstComeFirstServe)
	v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
	v1.Post("/priority", handler.PreemptivePriority)
	v1.Post("/rr", handler.RoundRobin)
	v1.Post("/all", handler.AllAlgorithms)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	response, err := schedulers.ScheduleFirstComeFirstServe(request)
	return s.respond(ctx, response, err)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	response, err := schedulers.ScheduleShortestRemainingTimeFirst(request)
	return s.respond(ctx, response, err)
}

func (s *SchedulerHandlerImpl) PreemptivePriority(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	response, err := schedulers.SchedulePreemptivePriority(request)
	return s.respond(ctx, response, err)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	s.defaultQuantum(request)
	response, err := schedulers.ScheduleRoundRobin(request)
	return s.respond(ctx, response, err)
}

// AllAlgorithms runs every policy against independent copies of the request's
// process set and returns the responses keyed by algorithm name.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	s.defaultQuantum(request)

	runs := []struct {
		name string
		run  func(*requests.ScheduleRequest) (responses.ScheduleResponse, error)
	}{
		{schedulers.AlgorithmFCFS, schedulers.ScheduleFirstComeFirstServe},
		{schedulers.AlgorithmSRTF, schedulers.ScheduleShortestRemainingTimeFirst},
		{schedulers.AlgorithmPriority, schedulers.SchedulePreemptivePriority},
		{schedulers.AlgorithmRoundRobin, schedulers.ScheduleRoundRobin},
	}
	all := make(map[string]responses.ScheduleResponse, len(runs))
	for _, r := range runs {
		response, err := r.run(request)
		if err != nil {
			return s.respond(ctx, response, err)
		}
		all[r.name] = response
	}
	return ctx.JSON(all)
}

// parseRequest decodes the request body; on failure it writes the 400
// response itself and reports ok=false.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, bool) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		log.Println("bad schedule request:", err)
		_ = ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return nil, false
	}
	return &request, true
}

func (s *SchedulerHandlerImpl) defaultQuantum(request *requests.ScheduleRequest) {
	if request.TimeQuantum == 0 {
		request.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
}

func (s *SchedulerHandlerImpl) respond(ctx *fiber.Ctx, response responses.ScheduleResponse, err error) error {
	if err != nil {
		return ctx.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, requests.ErrEmptyInput),
		errors.Is(err, requests.ErrInvalidRecord),
		errors.Is(err, requests.ErrInvalidQuantum):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
