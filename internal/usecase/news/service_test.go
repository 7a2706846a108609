package news_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
	newsUC "newsdesk/internal/usecase/news"
)

/* ───────── stub repository ───────── */

type stubRepo struct {
	mu     sync.Mutex
	data   map[int64]*entity.News
	nextID int64
	err    error // forced error for every call

	createErr error
	updateErr error
	deleteErr error
	calls     []string
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.News{}, nextID: 1}
}

func (s *stubRepo) record(call string) {
	s.calls = append(s.calls, call)
}

func (s *stubRepo) List(_ context.Context, q repository.NewsListQuery) ([]*entity.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("List")
	if s.err != nil {
		return nil, s.err
	}
	out := s.filter(q.Title)
	sort.Slice(out, func(i, j int) bool {
		if q.Order == repository.SortAsc {
			return out[i].PublicationDate.Before(out[j].PublicationDate)
		}
		return out[i].PublicationDate.After(out[j].PublicationDate)
	})
	if q.Offset >= len(out) {
		return nil, nil
	}
	end := q.Offset + q.Limit
	if end > len(out) {
		end = len(out)
	}
	return out[q.Offset:end], nil
}

func (s *stubRepo) Count(_ context.Context, title string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Count")
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.filter(title))), nil
}

func (s *stubRepo) filter(title string) []*entity.News {
	var out []*entity.News
	for _, n := range s.data {
		if title == "" || strings.Contains(strings.ToLower(n.Title), strings.ToLower(title)) {
			out = append(out, n)
		}
	}
	return out
}

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Get")
	if s.err != nil {
		return nil, s.err
	}
	n, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (s *stubRepo) FindByTitle(_ context.Context, title string) (*entity.News, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("FindByTitle")
	if s.err != nil {
		return nil, s.err
	}
	for _, n := range s.data {
		if n.Title == title {
			cp := *n
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, n *entity.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Create")
	if s.err != nil {
		return s.err
	}
	if s.createErr != nil {
		return s.createErr
	}
	n.ID = s.nextID
	n.CreatedAt = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	s.nextID++
	cp := *n
	s.data[n.ID] = &cp
	return nil
}

func (s *stubRepo) Update(_ context.Context, n *entity.News) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Update")
	if s.err != nil {
		return s.err
	}
	if s.updateErr != nil {
		return s.updateErr
	}
	cp := *n
	s.data[n.ID] = &cp
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("Delete")
	if s.err != nil {
		return s.err
	}
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.data, id)
	return nil
}

/* ───────── helpers ───────── */

var fixedNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func newService(repo repository.NewsRepository, opts ...newsUC.Option) *newsUC.Service {
	opts = append([]newsUC.Option{newsUC.WithClock(func() time.Time { return fixedNow })}, opts...)
	return newsUC.NewService(repo, opts...)
}

func validInput(title string) newsUC.Input {
	return newsUC.Input{
		Title:           title,
		Text:            strings.Repeat("a", 500),
		Author:          "Jane Doe",
		FirstHand:       true,
		PublicationDate: fixedNow.Add(48 * time.Hour),
	}
}

func seed(t *testing.T, svc *newsUC.Service, title string) *entity.News {
	t.Helper()
	n, err := svc.Create(context.Background(), validInput(title))
	require.NoError(t, err)
	return n
}

func requireKind(t *testing.T, err error, kind entity.ErrorKind, msg string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *entity.Error
	require.True(t, errors.As(err, &domainErr), "expected *entity.Error, got %T: %v", err, err)
	assert.Equal(t, kind, domainErr.Kind)
	assert.Equal(t, msg, domainErr.Message)
}

/* ───────── Create ───────── */

func TestService_Create(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	n, err := svc.Create(context.Background(), validInput("Breaking"))

	require.NoError(t, err)
	assert.Equal(t, int64(1), n.ID)
	assert.Equal(t, "Breaking", n.Title)
	assert.True(t, n.FirstHand)
	assert.False(t, n.CreatedAt.IsZero())

	stored, err := svc.Get(context.Background(), n.ID)
	require.NoError(t, err)
	assert.Equal(t, n.Title, stored.Title)
}

func TestService_Create_DuplicateTitle(t *testing.T) {
	repo := newStub()
	svc := newService(repo)
	seed(t, svc, "A")

	_, err := svc.Create(context.Background(), validInput("A"))

	requireKind(t, err, entity.KindConflict, `News with title "A" already exists.`)
	assert.Len(t, repo.data, 1)
}

func TestService_Create_TitleIsCaseSensitive(t *testing.T) {
	svc := newService(newStub())
	seed(t, svc, "Title")

	_, err := svc.Create(context.Background(), validInput("title"))

	assert.NoError(t, err)
}

func TestService_Create_TextLength(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "499 characters", text: strings.Repeat("a", 499), wantErr: true},
		{name: "exactly 500", text: strings.Repeat("a", 500), wantErr: false},
		{name: "empty", text: "", wantErr: true},
		{name: "500 multibyte runes", text: strings.Repeat("ニ", 500), wantErr: false},
		{name: "499 multibyte runes", text: strings.Repeat("ニ", 499), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStub()
			svc := newService(repo)
			in := validInput("T")
			in.Text = tt.text

			_, err := svc.Create(context.Background(), in)

			if tt.wantErr {
				requireKind(t, err, entity.KindBadRequest, "The news text must have at least 500 characters.")
				assert.Empty(t, repo.data)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Create_RuleOrder(t *testing.T) {
	// Duplicate title and short text together: the conflict wins.
	svc := newService(newStub())
	seed(t, svc, "A")

	in := validInput("A")
	in.Text = "short"
	in.PublicationDate = fixedNow.Add(-365 * 24 * time.Hour)

	_, err := svc.Create(context.Background(), in)
	requireKind(t, err, entity.KindConflict, `News with title "A" already exists.`)

	// Short text and past date together: the length rule wins.
	in.Title = "B"
	_, err = svc.Create(context.Background(), in)
	requireKind(t, err, entity.KindBadRequest, "The news text must have at least 500 characters.")
}

func TestService_Create_PublicationDate(t *testing.T) {
	tests := []struct {
		name    string
		date    time.Time
		opts    []newsUC.Option
		wantErr bool
	}{
		{name: "future", date: fixedNow.Add(time.Hour)},
		{name: "earlier today", date: fixedNow.Add(-time.Hour)},
		{name: "midnight today", date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
		{name: "yesterday", date: fixedNow.Add(-24 * time.Hour), wantErr: true},
		{name: "last year", date: fixedNow.AddDate(-1, 0, 0), wantErr: true},
		{
			name: "past allowed when rule disabled",
			date: fixedNow.AddDate(-1, 0, 0),
			opts: []newsUC.Option{newsUC.WithRejectPastPublication(false)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(newStub(), tt.opts...)
			in := validInput("T")
			in.PublicationDate = tt.date

			_, err := svc.Create(context.Background(), in)

			if tt.wantErr {
				requireKind(t, err, entity.KindBadRequest, "The publication date cannot be in the past.")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_Create_StoreUniqueViolation(t *testing.T) {
	repo := newStub()
	repo.createErr = fmt.Errorf("%w: duplicate key", repository.ErrDuplicateTitle)
	svc := newService(repo)

	_, err := svc.Create(context.Background(), validInput("Raced"))

	requireKind(t, err, entity.KindConflict, `News with title "Raced" already exists.`)
}

func TestService_Create_StoreError(t *testing.T) {
	repo := newStub()
	repo.createErr = errors.New("connection reset")
	svc := newService(repo)

	_, err := svc.Create(context.Background(), validInput("T"))

	require.Error(t, err)
	assert.Equal(t, entity.KindUnknown, entity.KindOf(err))
	assert.Contains(t, err.Error(), "connection reset")
}

func TestService_Create_WithMinTextLength(t *testing.T) {
	svc := newService(newStub(), newsUC.WithMinTextLength(10))
	in := validInput("T")
	in.Text = "123456789"

	_, err := svc.Create(context.Background(), in)

	requireKind(t, err, entity.KindBadRequest, "The news text must have at least 10 characters.")
}

/* ───────── Get ───────── */

func TestService_Get_NotFound(t *testing.T) {
	svc := newService(newStub())

	_, err := svc.Get(context.Background(), 42)

	requireKind(t, err, entity.KindNotFound, "News with id 42 not found.")
}

func TestService_Get_StoreError(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("db down")
	svc := newService(repo)

	_, err := svc.Get(context.Background(), 1)

	require.Error(t, err)
	assert.Equal(t, entity.KindUnknown, entity.KindOf(err))
}

/* ───────── Update ───────── */

func TestService_Update(t *testing.T) {
	repo := newStub()
	svc := newService(repo)
	orig := seed(t, svc, "Old")

	in := validInput("New")
	in.Author = "John"
	in.FirstHand = false
	updated, err := svc.Update(context.Background(), orig.ID, in)

	require.NoError(t, err)
	assert.Equal(t, orig.ID, updated.ID)
	assert.Equal(t, orig.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, "John", updated.Author)
	assert.False(t, updated.FirstHand)
	assert.Equal(t, "New", repo.data[orig.ID].Title)
}

func TestService_Update_SameTitleSkipsUniquenessCheck(t *testing.T) {
	repo := newStub()
	svc := newService(repo)
	orig := seed(t, svc, "Same")
	repo.calls = nil

	_, err := svc.Update(context.Background(), orig.ID, validInput("Same"))

	require.NoError(t, err)
	assert.Equal(t, []string{"Get", "Update"}, repo.calls)
}

func TestService_Update_TitleTakenByOther(t *testing.T) {
	svc := newService(newStub())
	seed(t, svc, "A")
	b := seed(t, svc, "B")

	_, err := svc.Update(context.Background(), b.ID, validInput("A"))

	requireKind(t, err, entity.KindConflict, `News with title "A" already exists.`)
}

func TestService_Update_NotFound(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	_, err := svc.Update(context.Background(), 99, validInput("X"))

	requireKind(t, err, entity.KindNotFound, "News with id 99 not found.")
	assert.Equal(t, []string{"Get"}, repo.calls)
}

func TestService_Update_NotFoundBeatsValidation(t *testing.T) {
	svc := newService(newStub())
	in := validInput("X")
	in.Text = "short"

	_, err := svc.Update(context.Background(), 99, in)

	requireKind(t, err, entity.KindNotFound, "News with id 99 not found.")
}

func TestService_Update_ShortText(t *testing.T) {
	svc := newService(newStub())
	orig := seed(t, svc, "A")
	in := validInput("A")
	in.Text = strings.Repeat("x", 499)

	_, err := svc.Update(context.Background(), orig.ID, in)

	requireKind(t, err, entity.KindBadRequest, "The news text must have at least 500 characters.")
}

func TestService_Update_PastDate(t *testing.T) {
	svc := newService(newStub())
	orig := seed(t, svc, "A")
	in := validInput("A")
	in.PublicationDate = fixedNow.AddDate(0, -2, 0)

	_, err := svc.Update(context.Background(), orig.ID, in)

	requireKind(t, err, entity.KindBadRequest, "The publication date cannot be in the past.")
}

func TestService_Update_StoreErrors(t *testing.T) {
	tests := []struct {
		name      string
		updateErr error
		wantKind  entity.ErrorKind
	}{
		{name: "unique violation", updateErr: repository.ErrDuplicateTitle, wantKind: entity.KindConflict},
		{name: "vanished row", updateErr: repository.ErrNewsNotFound, wantKind: entity.KindNotFound},
		{name: "other", updateErr: errors.New("timeout"), wantKind: entity.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStub()
			svc := newService(repo)
			orig := seed(t, svc, "A")
			repo.updateErr = tt.updateErr

			_, err := svc.Update(context.Background(), orig.ID, validInput("B"))

			require.Error(t, err)
			assert.Equal(t, tt.wantKind, entity.KindOf(err))
		})
	}
}

/* ───────── Delete ───────── */

func TestService_Delete(t *testing.T) {
	repo := newStub()
	svc := newService(repo)
	n := seed(t, svc, "A")

	require.NoError(t, svc.Delete(context.Background(), n.ID))

	_, err := svc.Get(context.Background(), n.ID)
	requireKind(t, err, entity.KindNotFound, fmt.Sprintf("News with id %d not found.", n.ID))
}

func TestService_Delete_NotFound(t *testing.T) {
	repo := newStub()
	svc := newService(repo)

	err := svc.Delete(context.Background(), 7)

	requireKind(t, err, entity.KindNotFound, "News with id 7 not found.")
	assert.NotContains(t, repo.calls, "Delete")
}

func TestService_Delete_VanishedRow(t *testing.T) {
	repo := newStub()
	svc := newService(repo)
	n := seed(t, svc, "A")
	repo.deleteErr = repository.ErrNewsNotFound

	err := svc.Delete(context.Background(), n.ID)

	assert.Equal(t, entity.KindNotFound, entity.KindOf(err))
}

/* ───────── List ───────── */

func seedMany(t *testing.T, repo *stubRepo, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		repo.data[int64(i+1)] = &entity.News{
			ID:              int64(i + 1),
			Title:           fmt.Sprintf("News %02d", i),
			PublicationDate: fixedNow.Add(time.Duration(i) * time.Hour),
		}
	}
}

func TestService_List_Pagination(t *testing.T) {
	repo := newStub()
	seedMany(t, repo, 15)
	svc := newService(repo)

	first, err := svc.List(context.Background(), pagination.Params{Page: 1, Limit: 10, Order: pagination.OrderDesc})
	require.NoError(t, err)
	second, err := svc.List(context.Background(), pagination.Params{Page: 2, Limit: 10, Order: pagination.OrderDesc})
	require.NoError(t, err)

	assert.Len(t, first.Data, 10)
	assert.Len(t, second.Data, 5)
	assert.Equal(t, int64(15), first.Pagination.Total)
	assert.Equal(t, 2, first.Pagination.TotalPages)

	for i := 1; i < len(first.Data); i++ {
		assert.False(t, first.Data[i].PublicationDate.After(first.Data[i-1].PublicationDate))
	}
}

func TestService_List_Ascending(t *testing.T) {
	repo := newStub()
	seedMany(t, repo, 5)
	svc := newService(repo)

	res, err := svc.List(context.Background(), pagination.Params{Page: 1, Limit: 10, Order: pagination.OrderAsc})

	require.NoError(t, err)
	for i := 1; i < len(res.Data); i++ {
		assert.False(t, res.Data[i].PublicationDate.Before(res.Data[i-1].PublicationDate))
	}
}

func TestService_List_TitleFilter(t *testing.T) {
	repo := newStub()
	seedMany(t, repo, 15)
	svc := newService(repo)

	res, err := svc.List(context.Background(), pagination.Params{Page: 1, Limit: 10, Title: "news 1"})

	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Pagination.Total)
	for _, n := range res.Data {
		assert.Contains(t, strings.ToLower(n.Title), "news 1")
	}
}

func TestService_List_EmptyPageIsNotNil(t *testing.T) {
	svc := newService(newStub())

	res, err := svc.List(context.Background(), pagination.Params{Page: 3, Limit: 10})

	require.NoError(t, err)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestService_List_StoreError(t *testing.T) {
	repo := newStub()
	repo.err = errors.New("db down")
	svc := newService(repo)

	_, err := svc.List(context.Background(), pagination.Params{Page: 1, Limit: 10})

	assert.ErrorIs(t, err, repo.err)
}

/* ───────── observability ───────── */

func TestService_RecordsRuleViolations(t *testing.T) {
	counter := metrics.NewsRuleViolationsTotal.WithLabelValues("text_min_length")
	before := testutil.ToFloat64(counter)

	svc := newService(newStub())
	in := validInput("T")
	in.Text = "short"
	_, _ = svc.Create(context.Background(), in)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestService_Spans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(sdktrace.NewTracerProvider())

	repo := newStub()
	svc := newService(repo)

	_, err := svc.Get(context.Background(), 1)
	require.Error(t, err)

	repo.err = errors.New("db down")
	_, err = svc.Get(context.Background(), 1)
	require.Error(t, err)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "news.get", spans[0].Name)
	assert.Equal(t, codes.Unset, spans[0].Status.Code, "domain errors are not span failures")
	assert.Equal(t, codes.Error, spans[1].Status.Code)
}
