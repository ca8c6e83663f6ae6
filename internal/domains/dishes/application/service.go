package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/domain"
	"github.com/Apurer/go-gin-grubdash-api/internal/domains/dishes/ports"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/ids"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/payload"
	"github.com/Apurer/go-gin-grubdash-api/internal/shared/pipeline"
)

// Service orchestrates dish use cases. Every write runs its pipeline and its
// terminal mutation under one lock so the existence check and the write cannot interleave.
type Service struct {
	repo  ports.Repository
	newID ids.Generator
	write sync.Mutex

	create *pipeline.Pipeline[RequestContext]
	update *pipeline.Pipeline[RequestContext]
	read   *pipeline.Pipeline[RequestContext]
}

type Option func(*options)

type options struct {
	newID    ids.Generator
	pipeline []pipeline.Option
}

// WithIDGenerator overrides identifier assignment.
func WithIDGenerator(gen ids.Generator) Option {
	return func(o *options) {
		o.newID = gen
	}
}

// WithPipelineOptions instruments every pipeline the service builds.
func WithPipelineOptions(opts ...pipeline.Option) Option {
	return func(o *options) {
		o.pipeline = append(o.pipeline, opts...)
	}
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	cfg := options{newID: ids.New}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.newID == nil {
		cfg.newID = ids.New
	}

	exists := dishExists(repo)
	updateSteps := []pipeline.Step[RequestContext]{
		exists,
		pipeline.NewStep("dish.id_matches_route", idMatchesRoute),
	}
	updateSteps = append(updateSteps, fieldSteps()...)

	return &Service{
		repo:   repo,
		newID:  cfg.newID,
		create: pipeline.New("dishes.create", fieldSteps(), cfg.pipeline...),
		update: pipeline.New("dishes.update", updateSteps, cfg.pipeline...),
		read:   pipeline.New("dishes.read", []pipeline.Step[RequestContext]{exists}, cfg.pipeline...),
	}
}

func (s *Service) CreateDish(ctx context.Context, data payload.Data) (*domain.Dish, error) {
	s.write.Lock()
	defer s.write.Unlock()

	req := &RequestContext{Data: data}
	var created *domain.Dish
	err := s.create.Run(ctx, req, func(ctx context.Context, req *RequestContext) error {
		name, description, price, imageURL := fields(req.data())
		dish, err := domain.NewDish(s.newID(), name, description, price, imageURL)
		if err != nil {
			return err
		}
		created, err = s.repo.Insert(ctx, dish)
		if err != nil {
			return fmt.Errorf("insert dish: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Service) ListDishes(ctx context.Context) ([]*domain.Dish, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetDish(ctx context.Context, id string) (*domain.Dish, error) {
	req := &RequestContext{RouteID: id}
	if err := s.read.Validate(ctx, req); err != nil {
		return nil, err
	}
	return req.Dish, nil
}

func (s *Service) UpdateDish(ctx context.Context, id string, data payload.Data) (*domain.Dish, error) {
	s.write.Lock()
	defer s.write.Unlock()

	req := &RequestContext{RouteID: id, Data: data}
	var updated *domain.Dish
	err := s.update.Run(ctx, req, func(ctx context.Context, req *RequestContext) error {
		dish := req.Dish.Clone()
		if err := dish.Revise(fields(req.data())); err != nil {
			return err
		}
		var err error
		updated, err = s.repo.Update(ctx, dish)
		if err != nil {
			return fmt.Errorf("update dish %s: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Pipelines exposes the configured pipelines for inspection.
func (s *Service) Pipelines() map[string][]string {
	return map[string][]string{
		s.create.Name(): s.create.StepNames(),
		s.update.Name(): s.update.StepNames(),
		s.read.Name():   s.read.StepNames(),
	}
}

func fields(data payload.Data) (name, description string, price int, imageURL string) {
	name, _ = data.String(FieldName)
	description, _ = data.String(FieldDescription)
	price, _ = data.Integer(FieldPrice)
	imageURL, _ = data.String(FieldImageURL)
	return name, description, price, imageURL
}

var _ ports.Service = (*Service)(nil)
