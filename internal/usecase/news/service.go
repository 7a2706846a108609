package news

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/observability/tracing"
	"newsdesk/internal/repository"
	"newsdesk/internal/utils/text"
)

// DefaultMinTextLength is the minimum number of characters a news text must have.
const DefaultMinTextLength = 500

// Input carries the writable fields of a news for Create and Update.
type Input struct {
	Title           string
	Text            string
	Author          string
	FirstHand       bool
	PublicationDate time.Time
}

// PaginatedResult represents one page of news plus pagination metadata.
type PaginatedResult struct {
	Data       []*entity.News
	Pagination pagination.Metadata
}

// Service provides news management use cases.
// It enforces business rules and delegates persistence to the repository.
type Service struct {
	repo               repository.NewsRepository
	now                func() time.Time
	minTextLength      int
	rejectPastPubDates bool
}

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithMinTextLength overrides DefaultMinTextLength.
func WithMinTextLength(n int) Option {
	return func(s *Service) { s.minTextLength = n }
}

// WithRejectPastPublication toggles the rule rejecting publication dates
// before the current day. Enabled by default.
func WithRejectPastPublication(enabled bool) Option {
	return func(s *Service) { s.rejectPastPubDates = enabled }
}

// NewService creates a Service backed by repo.
func NewService(repo repository.NewsRepository, opts ...Option) *Service {
	s := &Service{
		repo:               repo,
		now:                time.Now,
		minTextLength:      DefaultMinTextLength,
		rejectPastPubDates: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of news together with the number of news matching
// the title filter. The page and the count are fetched concurrently.
func (s *Service) List(ctx context.Context, params pagination.Params) (result *PaginatedResult, err error) {
	ctx, span := s.start(ctx, "list",
		attribute.Int("news.page", params.Page),
		attribute.String("news.order", string(params.Order)),
		attribute.Bool("news.title_filter", params.Title != ""))
	defer func() { s.finish(span, "list", err) }()

	query := repository.NewsListQuery{
		Offset: pagination.CalculateOffset(params.Page, params.Limit),
		Limit:  params.Limit,
		Order:  repository.SortDesc,
		Title:  params.Title,
	}
	if params.Order == pagination.OrderAsc {
		query.Order = repository.SortAsc
	}

	var (
		items []*entity.News
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = s.repo.List(gctx, query)
		if err != nil {
			return fmt.Errorf("list news: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.Count(gctx, params.Title)
		if err != nil {
			return fmt.Errorf("count news: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if items == nil {
		items = []*entity.News{}
	}
	return &PaginatedResult{
		Data:       items,
		Pagination: pagination.NewMetadata(params, total),
	}, nil
}

// Get retrieves a news by id.
// Returns a NotFound error if it does not exist.
func (s *Service) Get(ctx context.Context, id int64) (n *entity.News, err error) {
	ctx, span := s.start(ctx, "get", attribute.Int64("news.id", id))
	defer func() { s.finish(span, "get", err) }()

	return s.getOrFail(ctx, id)
}

// Create checks title uniqueness, then text length, then the publication
// date, and persists the news only if every rule passes.
func (s *Service) Create(ctx context.Context, in Input) (n *entity.News, err error) {
	ctx, span := s.start(ctx, "create")
	defer func() { s.finish(span, "create", err) }()

	if err := s.validate(ctx, in, true); err != nil {
		return nil, err
	}

	n = &entity.News{
		Title:           in.Title,
		Text:            in.Text,
		Author:          in.Author,
		FirstHand:       in.FirstHand,
		PublicationDate: in.PublicationDate,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		if errors.Is(err, repository.ErrDuplicateTitle) {
			metrics.RecordRuleViolation(ruleTitleUnique)
			return nil, ErrTitleConflict(in.Title)
		}
		return nil, fmt.Errorf("create news: %w", err)
	}
	span.SetAttributes(attribute.Int64("news.id", n.ID))
	return n, nil
}

// Update replaces the writable fields of the news identified by id.
// Title uniqueness is only checked when the title changes.
func (s *Service) Update(ctx context.Context, id int64, in Input) (n *entity.News, err error) {
	ctx, span := s.start(ctx, "update", attribute.Int64("news.id", id))
	defer func() { s.finish(span, "update", err) }()

	existing, err := s.getOrFail(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, in, existing.Title != in.Title); err != nil {
		return nil, err
	}

	updated := *existing
	updated.Title = in.Title
	updated.Text = in.Text
	updated.Author = in.Author
	updated.FirstHand = in.FirstHand
	updated.PublicationDate = in.PublicationDate

	if err := s.repo.Update(ctx, &updated); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateTitle):
			metrics.RecordRuleViolation(ruleTitleUnique)
			return nil, ErrTitleConflict(in.Title)
		case errors.Is(err, repository.ErrNewsNotFound):
			return nil, ErrNotFound(id)
		}
		return nil, fmt.Errorf("update news: %w", err)
	}
	return &updated, nil
}

// Delete removes the news identified by id.
// Returns a NotFound error if it does not exist.
func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	ctx, span := s.start(ctx, "delete", attribute.Int64("news.id", id))
	defer func() { s.finish(span, "delete", err) }()

	if _, err := s.getOrFail(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return ErrNotFound(id)
		}
		return fmt.Errorf("delete news: %w", err)
	}
	return nil
}

func (s *Service) getOrFail(ctx context.Context, id int64) (*entity.News, error) {
	n, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if n == nil {
		return nil, ErrNotFound(id)
	}
	return n, nil
}

// validate applies the write rules in order; the first failing rule wins.
func (s *Service) validate(ctx context.Context, in Input, checkTitle bool) error {
	if checkTitle {
		other, err := s.repo.FindByTitle(ctx, in.Title)
		if err != nil {
			return fmt.Errorf("find news by title: %w", err)
		}
		if other != nil {
			metrics.RecordRuleViolation(ruleTitleUnique)
			return ErrTitleConflict(in.Title)
		}
	}

	if !text.HasMinRunes(in.Text, s.minTextLength) {
		metrics.RecordRuleViolation(ruleTextMinLength)
		return ErrTextTooShort(s.minTextLength)
	}

	if s.rejectPastPubDates && in.PublicationDate.Before(startOfDay(s.now())) {
		metrics.RecordRuleViolation(rulePublicationDate)
		return ErrPublicationInPast
	}
	return nil
}

type spanState struct {
	trace.Span
	started time.Time
}

func (s *Service) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, *spanState) {
	ctx, span := tracing.GetTracer().Start(ctx, "news."+op, trace.WithAttributes(attrs...))
	return ctx, &spanState{Span: span, started: time.Now()}
}

// finish records the outcome on the span and in the operation metrics.
// Domain rule violations are expected outcomes and do not mark the span as failed.
func (s *Service) finish(span *spanState, op string, err error) {
	defer span.End()
	metrics.RecordNewsOperation(op, err, time.Since(span.started))
	if err == nil {
		return
	}
	if kind := entity.KindOf(err); kind != entity.KindUnknown {
		span.SetAttributes(attribute.String("news.error_kind", kind.String()))
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
