//go:build !integration

package quiz

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SaiPranav00/EVMATCHFINAL/business/matching"
	"github.com/SaiPranav00/EVMATCHFINAL/domain"
)

// ---- in-memory fakes ----

type fakePrefRepo struct {
	records map[uint]domain.PreferenceRecord
}

func newFakePrefRepo() *fakePrefRepo {
	return &fakePrefRepo{records: map[uint]domain.PreferenceRecord{}}
}

func (f *fakePrefRepo) GetByUser(_ context.Context, userID uint) (domain.PreferenceRecord, bool, error) {
	rec, ok := f.records[userID]
	return rec, ok, nil
}

func (f *fakePrefRepo) Upsert(_ context.Context, record *domain.PreferenceRecord) error {
	f.records[record.UserID] = *record
	return nil
}

type fakeQuizRepo struct {
	submissions []domain.QuizSubmission
}

func (f *fakeQuizRepo) SaveSubmission(_ context.Context, s *domain.QuizSubmission) error {
	f.submissions = append(f.submissions, *s)
	return nil
}

type fakeVehicleRepo struct {
	vehicles []domain.Vehicle
	calls    int
}

func (f *fakeVehicleRepo) FindAll(_ context.Context) ([]domain.Vehicle, error) {
	f.calls++
	return f.vehicles, nil
}

type fakeConfigRepo struct {
	cfg domain.MatchConfig
	ok  bool
}

func (f *fakeConfigRepo) GetConfig(_ context.Context, _ string) (domain.MatchConfig, bool, error) {
	return f.cfg, f.ok, nil
}

func (f *fakeConfigRepo) UpsertConfig(_ context.Context, cfg domain.MatchConfig) error {
	f.cfg = cfg
	f.ok = true
	return nil
}

type fakeCache struct {
	entries map[string][]matching.RankedVehicle
	hits    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]matching.RankedVehicle{}}
}

func cacheKey(userID uint, topN int) string {
	return fmt.Sprintf("%d:%d", userID, topN)
}

func (f *fakeCache) Get(_ context.Context, userID uint, topN int) ([]matching.RankedVehicle, bool, error) {
	recs, ok := f.entries[cacheKey(userID, topN)]
	if ok {
		f.hits++
	}
	return recs, ok, nil
}

func (f *fakeCache) Set(_ context.Context, userID uint, topN int, recs []matching.RankedVehicle, _ time.Duration) error {
	f.entries[cacheKey(userID, topN)] = recs
	return nil
}

func testVehicle(id uint64, bodyType string, msrp float64, epaRange int) domain.Vehicle {
	return domain.Vehicle{
		ID:       id,
		Make:     "Testa",
		Model:    "Unit",
		BodyType: bodyType,
		Price:    domain.VehiclePrice{MSRP: msrp},
		Specifications: domain.VehicleSpecifications{
			EPARange: epaRange,
		},
	}
}

func newTestService(vehicles []domain.Vehicle) (*QuizService, *fakePrefRepo, *fakeQuizRepo, *fakeVehicleRepo, *fakeCache) {
	prefRepo := newFakePrefRepo()
	quizRepo := &fakeQuizRepo{}
	vehicleRepo := &fakeVehicleRepo{vehicles: vehicles}
	cache := newFakeCache()
	svc := NewQuizService(prefRepo, quizRepo, vehicleRepo, &fakeConfigRepo{}, cache, matching.DefaultConfig())
	return svc, prefRepo, quizRepo, vehicleRepo, cache
}

// ---- tests ----

func TestSubmitQuizStoresPreferencesAndRanks(t *testing.T) {
	vehicles := []domain.Vehicle{
		testVehicle(1, "sedan", 45000, 280),
		testVehicle(2, "suv", 55000, 310),
		testVehicle(3, "hatchback", 30000, 250),
	}
	svc, prefRepo, quizRepo, _, _ := newTestService(vehicles)

	min, max := 25000.0, 60000.0
	answers := QuizAnswers{
		BudgetMin:       &min,
		BudgetMax:       &max,
		VehicleType:     "sedan",
		RangeImportance: 7,
		TechImportance:  5,
	}

	recs, err := svc.SubmitQuiz(context.Background(), 42, answers, 2)
	if err != nil {
		t.Fatalf("SubmitQuiz returned error: %v", err)
	}

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Score < recs[1].Score {
		t.Errorf("recommendations not sorted descending: %d then %d", recs[0].Score, recs[1].Score)
	}

	stored, ok := prefRepo.records[42]
	if !ok {
		t.Fatal("preferences were not persisted")
	}
	if stored.VehicleType != "sedan" || stored.RangeImportance != 7 {
		t.Errorf("stored preferences mismatch: %+v", stored)
	}

	if len(quizRepo.submissions) != 1 {
		t.Fatalf("expected 1 raw submission, got %d", len(quizRepo.submissions))
	}
	if quizRepo.submissions[0].UserID != 42 {
		t.Errorf("submission user id = %d, want 42", quizRepo.submissions[0].UserID)
	}
}

func TestSubmitQuizRejectsInvalidAnswers(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil)

	cases := []QuizAnswers{
		{RangeImportance: 11},
		{TechImportance: -1},
		func() QuizAnswers {
			min, max := 50000.0, 30000.0
			return QuizAnswers{BudgetMin: &min, BudgetMax: &max}
		}(),
	}

	for i, answers := range cases {
		if _, err := svc.SubmitQuiz(context.Background(), 1, answers, 5); err == nil {
			t.Errorf("case %d: expected validation error, got nil", i)
		}
	}
}

func TestSubmitQuizRejectsHalfSpecifiedBudget(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil)

	min := 20000.0
	if _, err := svc.SubmitQuiz(context.Background(), 1, QuizAnswers{BudgetMin: &min}, 5); err == nil {
		t.Error("expected validation error for budget min without max")
	}

	max := 40000.0
	if _, err := svc.SubmitQuiz(context.Background(), 1, QuizAnswers{BudgetMax: &max}, 5); err == nil {
		t.Error("expected validation error for budget max without min")
	}
}

func TestGetMatchesIgnoresHalfSetStoredBudget(t *testing.T) {
	svc, prefRepo, _, _, _ := newTestService([]domain.Vehicle{
		testVehicle(1, "sedan", 40000, 300),
	})

	// legacy row with only a lower bound; must not filter against a zero max
	min := 20000.0
	prefRepo.records[5] = domain.PreferenceRecord{UserID: 5, BudgetMin: &min, VehicleType: "sedan"}

	recs, err := svc.GetMatches(context.Background(), 5, 5)
	if err != nil {
		t.Fatalf("GetMatches returned error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 match, got %d", len(recs))
	}
}

func TestSubmitQuizRequiresUserID(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil)

	if _, err := svc.SubmitQuiz(context.Background(), 0, QuizAnswers{}, 5); err == nil {
		t.Fatal("expected error for missing user id")
	}
}

func TestGetMatchesWithoutPreferences(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil)

	if _, err := svc.GetMatches(context.Background(), 7, 5); err == nil {
		t.Fatal("expected error when user has no preferences")
	}
}

func TestGetMatchesServedFromCache(t *testing.T) {
	svc, prefRepo, _, vehicleRepo, cache := newTestService([]domain.Vehicle{
		testVehicle(1, "sedan", 40000, 300),
	})

	prefRepo.records[9] = domain.PreferenceRecord{UserID: 9, VehicleType: "sedan"}

	cached := []matching.RankedVehicle{{Score: 99}}
	_ = cache.Set(context.Background(), 9, 5, cached, time.Minute)

	recs, err := svc.GetMatches(context.Background(), 9, 5)
	if err != nil {
		t.Fatalf("GetMatches returned error: %v", err)
	}

	if len(recs) != 1 || recs[0].Score != 99 {
		t.Fatalf("expected cached result, got %+v", recs)
	}
	if vehicleRepo.calls != 0 {
		t.Errorf("catalog was loaded despite cache hit")
	}
	if cache.hits != 1 {
		t.Errorf("cache hits = %d, want 1", cache.hits)
	}
}

func TestGetMatchesPopulatesCache(t *testing.T) {
	svc, prefRepo, _, _, cache := newTestService([]domain.Vehicle{
		testVehicle(1, "sedan", 40000, 300),
	})

	prefRepo.records[3] = domain.PreferenceRecord{UserID: 3, VehicleType: "sedan"}

	if _, err := svc.GetMatches(context.Background(), 3, 5); err != nil {
		t.Fatalf("GetMatches returned error: %v", err)
	}

	if _, ok := cache.entries[cacheKey(3, 5)]; !ok {
		t.Error("match results were not cached")
	}
}

func TestCandidatePreFilterDropsFarOverBudget(t *testing.T) {
	cfg := matching.DefaultConfig()
	max := 40000.0
	prefs := domain.UserPreferences{Budget: &domain.BudgetRange{Min: 20000, Max: max}}

	vehicles := []domain.Vehicle{
		testVehicle(1, "sedan", 39000, 300),
		// within max*1.2, kept for partial credit scoring
		testVehicle(2, "sedan", 45000, 300),
		// beyond max*1.2, excluded outright
		testVehicle(3, "sedan", 50000, 300),
	}

	got := filterCandidates(vehicles, prefs, cfg)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	for _, v := range got {
		if v.ID == 3 {
			t.Error("vehicle beyond the flexibility cap was not excluded")
		}
	}
}

func TestCandidatePreFilterNoBudget(t *testing.T) {
	cfg := matching.DefaultConfig()
	vehicles := []domain.Vehicle{
		testVehicle(1, "sedan", 200000, 300),
	}

	got := filterCandidates(vehicles, domain.UserPreferences{}, cfg)
	if len(got) != 1 {
		t.Fatalf("no budget stated, expected all candidates kept, got %d", len(got))
	}
}

func TestLoadConfigMergesStoredOverrides(t *testing.T) {
	prefRepo := newFakePrefRepo()
	cfgRepo := &fakeConfigRepo{
		cfg: domain.MatchConfig{
			Name:          ActiveConfigName,
			BudgetWeight:  50,
			RangeBaseline: 250,
			SimilarTypes:  map[string][]string{"sedan": {"coupe"}},
		},
		ok: true,
	}
	svc := NewQuizService(prefRepo, &fakeQuizRepo{}, &fakeVehicleRepo{}, cfgRepo, newFakeCache(), matching.DefaultConfig())

	cfg := svc.loadConfig(context.Background())

	if cfg.BudgetWeight != 50 {
		t.Errorf("BudgetWeight = %v, want stored override 50", cfg.BudgetWeight)
	}
	if cfg.RangeBaseline != 250 {
		t.Errorf("RangeBaseline = %v, want stored override 250", cfg.RangeBaseline)
	}
	// unset fields keep defaults
	if cfg.TypeWeight != matching.DefaultConfig().TypeWeight {
		t.Errorf("TypeWeight = %v, want default", cfg.TypeWeight)
	}
	if cfg.OverBudgetTolerance != matching.DefaultConfig().OverBudgetTolerance {
		t.Errorf("OverBudgetTolerance = %v, want default", cfg.OverBudgetTolerance)
	}
	if got := cfg.SimilarTypes["sedan"]; len(got) != 1 || got[0] != "coupe" {
		t.Errorf("SimilarTypes override not applied: %v", cfg.SimilarTypes)
	}
}

func TestLoadConfigFallsBackToDefault(t *testing.T) {
	svc, _, _, _, _ := newTestService(nil)

	cfg := svc.loadConfig(context.Background())
	def := matching.DefaultConfig()

	if cfg.BudgetWeight != def.BudgetWeight || cfg.RangeBaseline != def.RangeBaseline {
		t.Errorf("expected default config, got %+v", cfg)
	}
}
