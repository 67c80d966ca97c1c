package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shriank296/subtle/internal/model"
	"github.com/shriank296/subtle/internal/repository"
	"github.com/shriank296/subtle/internal/service"
)

type fakeAdjustmentRepo struct {
	items      []model.TechnicalAdjustment
	err        error
	lastFilter repository.AdjustmentFilter
	lastPage   repository.Page // capture last page for normalization tests
}

func (f *fakeAdjustmentRepo) List(_ context.Context, filter repository.AdjustmentFilter, p repository.Page) (repository.PageResult[model.TechnicalAdjustment], error) {
	f.lastFilter = filter
	f.lastPage = p
	if f.err != nil {
		return repository.PageResult[model.TechnicalAdjustment]{}, f.err
	}
	total := len(f.items)
	start := p.Offset
	if start > total {
		start = total
	}
	end := start + p.Limit
	if end > total {
		end = total
	}
	return repository.PageResult[model.TechnicalAdjustment]{
		Items: append([]model.TechnicalAdjustment(nil), f.items[start:end]...),
		Total: total,
	}, nil
}

var _ repository.TechnicalAdjustmentRepository = (*fakeAdjustmentRepo)(nil)

func seedRows(n int, iis, pto uuid.UUID) []model.TechnicalAdjustment {
	rows := make([]model.TechnicalAdjustment, n)
	for i := range rows {
		rows[i] = model.TechnicalAdjustment{
			ID:                           uuid.New(),
			ModelName:                    "v0022025001",
			InsurableInterestSetID:       iis,
			PolicyTermOptionID:           pto,
			QuoteOptionID:                uuid.New(),
			AssetTypes:                   []string{"onshore_property"},
			Perils:                       []string{"Fire"},
			InsuredValueTypes:            []string{},
			AdjustmentTypeIdentifierCode: "ModelToTechnical",
			AdjustmentValue:              2.0,
			AdjustmentReason:             "Fire to tech added",
			ReasonCategory:               "Policy Coverage",
		}
	}
	return rows
}

func newSvc(repo repository.TechnicalAdjustmentRepository) service.TechnicalAdjustmentService {
	return service.NewTechnicalAdjustmentService(repo, zerolog.New(io.Discard))
}

func validParams() service.ListTechnicalAdjustmentsParams {
	return service.ListTechnicalAdjustmentsParams{
		InsurableInterestSetID: uuid.New(),
		PolicyTermOptionID:     uuid.New(),
	}
}

func TestList_Validation(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*service.ListTechnicalAdjustmentsParams)
		wantField string
	}{
		{"missing interest set id", func(p *service.ListTechnicalAdjustmentsParams) { p.InsurableInterestSetID = uuid.Nil }, "insurable_interest_set_id"},
		{"missing term option id", func(p *service.ListTechnicalAdjustmentsParams) { p.PolicyTermOptionID = uuid.Nil }, "policy_term_option_id"},
		{"page size over cap", func(p *service.ListTechnicalAdjustmentsParams) { p.PageSize = 201 }, "page_size"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newSvc(&fakeAdjustmentRepo{})
			params := validParams()
			tc.mutate(&params)
			_, err := svc.List(context.Background(), params)
			if !errors.Is(err, service.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			found := false
			for _, fe := range service.FieldErrors(err) {
				if fe.Field == tc.wantField {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("expected field error for %s, got %+v", tc.wantField, service.FieldErrors(err))
			}
		})
	}
}

func TestList_PaginationMeta(t *testing.T) {
	params := validParams()
	repo := &fakeAdjustmentRepo{items: seedRows(3, params.InsurableInterestSetID, params.PolicyTermOptionID)}
	svc := newSvc(repo)

	params.Page = 1
	params.PageSize = 2
	res, err := svc.List(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.TechnicalAdjustments) != 2 {
		t.Fatalf("expected 2 records on page 1, got %d", len(res.TechnicalAdjustments))
	}
	if res.Meta.TotalItems != 3 || res.Meta.TotalPages != 2 || res.Meta.PageNumber != 1 || res.Meta.PageSize != 2 {
		t.Fatalf("unexpected meta: %+v", res.Meta)
	}

	params.Page = 2
	res, err = svc.List(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.TechnicalAdjustments) != 1 {
		t.Fatalf("expected 1 record on page 2, got %d", len(res.TechnicalAdjustments))
	}
	if res.Meta.TotalItems != 3 || res.Meta.TotalPages != 2 {
		t.Fatalf("meta must reflect full set on every page: %+v", res.Meta)
	}
}

func TestList_OutOfRangePageIsEmptyWithTrueTotals(t *testing.T) {
	params := validParams()
	repo := &fakeAdjustmentRepo{items: seedRows(3, params.InsurableInterestSetID, params.PolicyTermOptionID)}
	svc := newSvc(repo)

	params.Page = 9
	params.PageSize = 2
	res, err := svc.List(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.TechnicalAdjustments) != 0 {
		t.Fatalf("expected empty page, got %d records", len(res.TechnicalAdjustments))
	}
	if res.Meta.TotalItems != 3 || res.Meta.TotalPages != 2 {
		t.Fatalf("expected true totals on out-of-range page: %+v", res.Meta)
	}
}

func TestList_PagingNormalization(t *testing.T) {
	params := validParams()
	repo := &fakeAdjustmentRepo{}
	svc := newSvc(repo)

	params.Page = -3
	params.PageSize = 0
	res, err := svc.List(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastPage.Limit != 50 {
		t.Fatalf("expected default page size 50, got %d", repo.lastPage.Limit)
	}
	if repo.lastPage.Offset != 0 {
		t.Fatalf("expected page clamp to offset 0, got %d", repo.lastPage.Offset)
	}
	if res.Meta.PageNumber != 1 || res.Meta.PageSize != 50 {
		t.Fatalf("meta must carry normalized paging: %+v", res.Meta)
	}
}

func TestList_EmptyResultIsNotAnError(t *testing.T) {
	svc := newSvc(&fakeAdjustmentRepo{})
	res, err := svc.List(context.Background(), validParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.TechnicalAdjustments) != 0 || res.Meta.TotalItems != 0 {
		t.Fatalf("expected empty envelope, got %+v", res)
	}
}

func TestList_NilListFieldsBecomeEmptyArrays(t *testing.T) {
	params := validParams()
	rows := seedRows(1, params.InsurableInterestSetID, params.PolicyTermOptionID)
	rows[0].AssetTypes = nil
	rows[0].Perils = nil
	rows[0].InsuredValueTypes = nil
	svc := newSvc(&fakeAdjustmentRepo{items: rows})

	res, err := svc.List(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := res.TechnicalAdjustments[0]
	if got.AssetTypes == nil || got.Perils == nil || got.InsuredValueTypes == nil {
		t.Fatalf("list fields must never be nil in the response: %+v", got)
	}
}

func TestList_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	svc := newSvc(&fakeAdjustmentRepo{err: boom})
	_, err := svc.List(context.Background(), validParams())
	if !errors.Is(err, boom) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestNewPageMeta_ZeroPageSizeGuard(t *testing.T) {
	meta := model.NewPageMeta(7, 1, 0)
	if meta.TotalPages != 1 {
		t.Fatalf("expected total_pages guard to yield 1, got %d", meta.TotalPages)
	}

	meta = model.NewPageMeta(7, 1, 2)
	if meta.TotalPages != 4 {
		t.Fatalf("expected ceil(7/2)=4, got %d", meta.TotalPages)
	}
}
