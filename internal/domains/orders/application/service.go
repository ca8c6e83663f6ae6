package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/ids"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/pipeline"
)

// DefaultPlacementTimeout bounds a single call to the placement orchestrator.
const DefaultPlacementTimeout = 30 * time.Second

// Service orchestrates order use cases. Updates and deletes are serialized so that
// the existence lookup and the mutation that follows it see the same collection.
// Creates take no lock: they look nothing up and insert under a fresh id.
type Service struct {
	repo             ports.Repository
	placement        ports.PlacementOrchestrator
	placementTimeout time.Duration
	newID            ids.Generator
	write            sync.Mutex

	create *pipeline.Pipeline[RequestContext]
	update *pipeline.Pipeline[RequestContext]
	remove *pipeline.Pipeline[RequestContext]
	read   *pipeline.Pipeline[RequestContext]
}

type Option func(*options)

type options struct {
	newID            ids.Generator
	placement        ports.PlacementOrchestrator
	placementTimeout time.Duration
	pipeline         []pipeline.Option
}

func WithIDGenerator(gen ids.Generator) Option {
	return func(o *options) {
		o.newID = gen
	}
}

// WithPlacement hands the insert of a validated order to an orchestrator instead of
// writing to the repository directly.
func WithPlacement(placement ports.PlacementOrchestrator) Option {
	return func(o *options) {
		o.placement = placement
	}
}

// WithPlacementTimeout caps how long CreateOrder waits on the placement orchestrator.
// Non-positive values keep DefaultPlacementTimeout.
func WithPlacementTimeout(d time.Duration) Option {
	return func(o *options) {
		o.placementTimeout = d
	}
}

func WithPipelineOptions(opts ...pipeline.Option) Option {
	return func(o *options) {
		o.pipeline = append(o.pipeline, opts...)
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	cfg := options{newID: ids.New, placementTimeout: DefaultPlacementTimeout}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.newID == nil {
		cfg.newID = ids.New
	}
	if cfg.placementTimeout <= 0 {
		cfg.placementTimeout = DefaultPlacementTimeout
	}

	exists := orderExists(repo)
	updateSteps := []pipeline.Step[RequestContext]{
		exists,
		pipeline.NewStep("order.id_matches_route", idMatchesRoute),
		pipeline.NewStep("order.status_valid", statusIsValid),
	}
	updateSteps = append(updateSteps, fieldSteps()...)
	deleteSteps := []pipeline.Step[RequestContext]{
		exists,
		pipeline.NewStep("order.pending_only", pendingOnly),
	}

	return &Service{
		repo:             repo,
		placement:        cfg.placement,
		placementTimeout: cfg.placementTimeout,
		newID:            cfg.newID,
		create:           pipeline.New("orders.create", fieldSteps(), cfg.pipeline...),
		update:           pipeline.New("orders.update", updateSteps, cfg.pipeline...),
		remove:           pipeline.New("orders.delete", deleteSteps, cfg.pipeline...),
		read:             pipeline.New("orders.read", []pipeline.Step[RequestContext]{exists}, cfg.pipeline...),
	}
}

func (s *Service) CreateOrder(ctx context.Context, data payload.Data) (*domain.Order, error) {
	req := &RequestContext{Data: data}
	var created *domain.Order
	err := s.create.Run(ctx, req, func(ctx context.Context, req *RequestContext) error {
		data := requestData(req)
		deliverTo, _ := data.String(FieldDeliverTo)
		mobileNumber, _ := data.String(FieldMobileNumber)
		order, err := domain.NewOrder(s.newID(), deliverTo, mobileNumber, lines(data))
		if err != nil {
			return err
		}
		created, err = s.place(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	req := &RequestContext{RouteID: id}
	if err := s.read.Validate(ctx, req); err != nil {
		return nil, err
	}
	return req.Order, nil
}

// UpdateOrder overwrites deliverTo, mobileNumber and status. The submitted dishes are
// validated but the stored line items are kept.
func (s *Service) UpdateOrder(ctx context.Context, id string, data payload.Data) (*domain.Order, error) {
	s.write.Lock()
	defer s.write.Unlock()

	req := &RequestContext{RouteID: id, Data: data}
	var updated *domain.Order
	err := s.update.Run(ctx, req, func(ctx context.Context, req *RequestContext) error {
		data := requestData(req)
		deliverTo, _ := data.String(FieldDeliverTo)
		mobileNumber, _ := data.String(FieldMobileNumber)
		status, _ := data.String(FieldStatus)

		order := req.Order.Clone()
		if err := order.Revise(deliverTo, mobileNumber, domain.Status(status)); err != nil {
			return err
		}
		var err error
		updated, err = s.repo.Update(ctx, order)
		if err != nil {
			return fmt.Errorf("update order %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	s.write.Lock()
	defer s.write.Unlock()

	req := &RequestContext{RouteID: id}
	return s.remove.Run(ctx, req, func(ctx context.Context, req *RequestContext) error {
		if err := s.repo.Delete(ctx, req.Order.ID); err != nil {
			return fmt.Errorf("delete order %s: %w", id, err)
		}
		return nil
	})
}

// Pipelines exposes the configured pipelines for inspection.
func (s *Service) Pipelines() map[string][]string {
	out := map[string][]string{}
	for _, p := range []*pipeline.Pipeline[RequestContext]{s.create, s.update, s.remove, s.read} {
		out[p.Name()] = p.StepNames()
	}
	return out
}

func (s *Service) place(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if s.placement != nil {
		ctx, cancel := context.WithTimeout(ctx, s.placementTimeout)
		defer cancel()
		placed, err := s.placement.PlaceOrder(ctx, order)
		if err != nil {
			return nil, fmt.Errorf("place order %s: %w", order.ID, err)
		}
		return placed, nil
	}
	inserted, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("insert order %s: %w", order.ID, err)
	}
	return inserted, nil
}

func lines(data payload.Data) []domain.Line {
	raw, _ := data.List(FieldDishes)
	out := make([]domain.Line, 0, len(raw))
	for _, item := range raw {
		line := payload.FromAny(item)
		dishID, _ := line.String(FieldDishID)
		quantity, _ := line.Integer(FieldQuantity)
		out = append(out, domain.Line{DishID: dishID, Quantity: quantity})
	}
	return out
}

var _ ports.Service = (*Service)(nil)
