// Package contract defines repository behavior suites that any storage
// implementation must satisfy. Implementations plug in via factories, so the
// same assertions run against Postgres in integration tests and against
// future backends for free.
package contract

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shriank296/subtle/internal/repository"
)

// AdjustmentSeed describes one adjustment row to create, including the two
// joined relations it must resolve through.
type AdjustmentSeed struct {
	InsurableInterestSetID uuid.UUID
	PolicyTermOptionID     uuid.UUID
	QuoteOptionID          uuid.UUID
	ModelName              string
	AdjustmentTypeCode     string
	AssetTypes             []string
	Perils                 []string
	InsuredValueTypes      []string
	AdjustmentValue        float64
	AdjustmentReason       string
	ReasonCategory         string
}

// AdjustmentFactory produces a repository under test plus a seeding function
// and a cleanup callback. Seeding returns the id of the created adjustment.
type AdjustmentFactory func(t *testing.T) (repo repository.TechnicalAdjustmentRepository, seed func(ctx context.Context, s AdjustmentSeed) (uuid.UUID, error), cleanup func())

func RunTechnicalAdjustmentRepositoryContract(t *testing.T, makeRepo AdjustmentFactory) {
	t.Helper()

	keyA := uuid.New()
	keyB := uuid.New()

	baseSeed := func(iis, pto uuid.UUID, reason string) AdjustmentSeed {
		return AdjustmentSeed{
			InsurableInterestSetID: iis,
			PolicyTermOptionID:     pto,
			QuoteOptionID:          uuid.New(),
			ModelName:              "v0022025001",
			AdjustmentTypeCode:     "ModelToTechnical",
			AssetTypes:             []string{"onshore_property"},
			Perils:                 []string{"Fire"},
			InsuredValueTypes:      []string{},
			AdjustmentValue:        2.0,
			AdjustmentReason:       reason,
			ReasonCategory:         "Policy Coverage",
		}
	}

	t.Run("filter_and_join_sourcing", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		if _, err := seed(ctx, baseSeed(keyA, keyB, "match 1")); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if _, err := seed(ctx, baseSeed(keyA, keyB, "match 2")); err != nil {
			t.Fatalf("seed: %v", err)
		}
		// Same interest set but a different term option must not match.
		if _, err := seed(ctx, baseSeed(keyA, uuid.New(), "other term")); err != nil {
			t.Fatalf("seed: %v", err)
		}

		res, err := repo.List(ctx, repository.AdjustmentFilter{
			InsurableInterestSetID: keyA,
			PolicyTermOptionID:     keyB,
		}, repository.Page{Limit: 10, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 2 || res.Total != 2 {
			t.Fatalf("unexpected result: len=%d total=%d", len(res.Items), res.Total)
		}
		for _, ta := range res.Items {
			if ta.ModelName != "v0022025001" {
				t.Fatalf("model_name not sourced from model configuration: %q", ta.ModelName)
			}
			if ta.AdjustmentTypeIdentifierCode != "ModelToTechnical" {
				t.Fatalf("adjustment type code not sourced from field definition: %q", ta.AdjustmentTypeIdentifierCode)
			}
			if ta.InsurableInterestSetID != keyA || ta.PolicyTermOptionID != keyB {
				t.Fatalf("row outside the filter leaked in: %+v", ta)
			}
		}
	})

	t.Run("pagination_totals_and_windows", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			if _, err := seed(ctx, baseSeed(keyA, keyB, "row")); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		filter := repository.AdjustmentFilter{InsurableInterestSetID: keyA, PolicyTermOptionID: keyB}

		first, err := repo.List(ctx, filter, repository.Page{Limit: 2, Offset: 0})
		if err != nil {
			t.Fatalf("list page 1: %v", err)
		}
		if len(first.Items) != 2 || first.Total != 3 {
			t.Fatalf("unexpected page 1: len=%d total=%d", len(first.Items), first.Total)
		}

		second, err := repo.List(ctx, filter, repository.Page{Limit: 2, Offset: 2})
		if err != nil {
			t.Fatalf("list page 2: %v", err)
		}
		if len(second.Items) != 1 || second.Total != 3 {
			t.Fatalf("unexpected page 2: len=%d total=%d", len(second.Items), second.Total)
		}
	})

	t.Run("out_of_range_page_keeps_true_total", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			if _, err := seed(ctx, baseSeed(keyA, keyB, "row")); err != nil {
				t.Fatalf("seed: %v", err)
			}
		}
		res, err := repo.List(ctx, repository.AdjustmentFilter{
			InsurableInterestSetID: keyA,
			PolicyTermOptionID:     keyB,
		}, repository.Page{Limit: 2, Offset: 10})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 0 || res.Total != 3 {
			t.Fatalf("expected empty window with total=3, got len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("no_matches_is_empty_not_error", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)

		res, err := repo.List(context.Background(), repository.AdjustmentFilter{
			InsurableInterestSetID: uuid.New(),
			PolicyTermOptionID:     uuid.New(),
		}, repository.Page{Limit: 10, Offset: 0})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 0 || res.Total != 0 {
			t.Fatalf("expected empty result, got len=%d total=%d", len(res.Items), res.Total)
		}
	})

	t.Run("stable_order_across_pages", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()

		created := make(map[uuid.UUID]bool)
		for i := 0; i < 5; i++ {
			id, err := seed(ctx, baseSeed(keyA, keyB, "row"))
			if err != nil {
				t.Fatalf("seed: %v", err)
			}
			created[id] = true
		}
		filter := repository.AdjustmentFilter{InsurableInterestSetID: keyA, PolicyTermOptionID: keyB}

		seen := make(map[uuid.UUID]bool)
		for offset := 0; offset < 5; offset += 2 {
			page, err := repo.List(ctx, filter, repository.Page{Limit: 2, Offset: offset})
			if err != nil {
				t.Fatalf("list offset=%d: %v", offset, err)
			}
			for _, ta := range page.Items {
				if seen[ta.ID] {
					t.Fatalf("row %s returned twice across pages", ta.ID)
				}
				seen[ta.ID] = true
			}
		}
		if len(seen) != len(created) {
			t.Fatalf("pages did not cover the full set: saw %d of %d", len(seen), len(created))
		}
	})
}
