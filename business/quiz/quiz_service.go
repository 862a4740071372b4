package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SaiPranav00/EVMATCHFINAL/business/matching"
	"github.com/SaiPranav00/EVMATCHFINAL/domain"
	"github.com/SaiPranav00/EVMATCHFINAL/pkg/logger"

	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

type PreferenceRepository interface {
	GetByUser(ctx context.Context, userID uint) (domain.PreferenceRecord, bool, error)
	Upsert(ctx context.Context, record *domain.PreferenceRecord) error
}

type QuizRepository interface {
	SaveSubmission(ctx context.Context, submission *domain.QuizSubmission) error
}

type VehicleRepository interface {
	FindAll(ctx context.Context) ([]domain.Vehicle, error)
}

type ConfigRepository interface {
	GetConfig(ctx context.Context, name string) (domain.MatchConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.MatchConfig) error
}

// MatchCache holds recently computed recommendation lists; entries expire
// by TTL only.
type MatchCache interface {
	Get(ctx context.Context, userID uint, topN int) ([]matching.RankedVehicle, bool, error)
	Set(ctx context.Context, userID uint, topN int, recs []matching.RankedVehicle, ttl time.Duration) error
}

// ---- Usecase / Service ----

const (
	matchCacheTTL = 2 * time.Minute
	maxImportance = 10
)

type QuizService struct {
	prefRepo    PreferenceRepository
	quizRepo    QuizRepository
	vehicleRepo VehicleRepository
	cfgRepo     ConfigRepository
	matchCache  MatchCache
	defaultCfg  matching.Config
}

func NewQuizService(
	prefRepo PreferenceRepository,
	quizRepo QuizRepository,
	vehicleRepo VehicleRepository,
	cfgRepo ConfigRepository,
	matchCache MatchCache,
	defaultCfg matching.Config,
) *QuizService {
	return &QuizService{
		prefRepo:    prefRepo,
		quizRepo:    quizRepo,
		vehicleRepo: vehicleRepo,
		cfgRepo:     cfgRepo,
		matchCache:  matchCache,
		defaultCfg:  defaultCfg,
	}
}

// QuizAnswers is the quiz payload after HTTP binding.
type QuizAnswers struct {
	BudgetMin        *float64
	BudgetMax        *float64
	VehicleType      string
	RangeImportance  int
	TechImportance   int
	ChargingFeatures []string
	EcoFeatures      []string
}

func (a QuizAnswers) validate() error {
	if (a.BudgetMin == nil) != (a.BudgetMax == nil) {
		return errors.New("budget min and max must be provided together")
	}
	if a.BudgetMin != nil && a.BudgetMax != nil && *a.BudgetMin > *a.BudgetMax {
		return errors.New("budget min cannot exceed budget max")
	}
	if a.RangeImportance < 0 || a.RangeImportance > maxImportance {
		return errors.New("range importance must be between 0 and 10")
	}
	if a.TechImportance < 0 || a.TechImportance > maxImportance {
		return errors.New("tech importance must be between 0 and 10")
	}
	return nil
}

func (a QuizAnswers) toRecord(userID uint) domain.PreferenceRecord {
	return domain.PreferenceRecord{
		UserID:           userID,
		BudgetMin:        a.BudgetMin,
		BudgetMax:        a.BudgetMax,
		VehicleType:      a.VehicleType,
		RangeImportance:  a.RangeImportance,
		TechImportance:   a.TechImportance,
		ChargingFeatures: a.ChargingFeatures,
		EcoFeatures:      a.EcoFeatures,
	}
}

func (a QuizAnswers) toJSONMap() datatypes.JSONMap {
	answers := datatypes.JSONMap{
		"vehicle_type":      a.VehicleType,
		"range_importance":  a.RangeImportance,
		"tech_importance":   a.TechImportance,
		"charging_features": a.ChargingFeatures,
		"eco_features":      a.EcoFeatures,
	}
	if a.BudgetMin != nil {
		answers["budget_min"] = *a.BudgetMin
	}
	if a.BudgetMax != nil {
		answers["budget_max"] = *a.BudgetMax
	}
	return answers
}

// SubmitQuiz stores the raw answers, upserts the user's derived
// preferences and immediately returns the resulting top-N matches.
func (s *QuizService) SubmitQuiz(ctx context.Context, userID uint, answers QuizAnswers, topN int) ([]matching.RankedVehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if userID == 0 {
		return nil, errors.New("user id is required")
	}
	if err := answers.validate(); err != nil {
		logger.Error("Invalid quiz answers", err)
		return nil, err
	}

	record := answers.toRecord(userID)
	if err := s.prefRepo.Upsert(ctx, &record); err != nil {
		logger.Error("Failed to save preferences", err)
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	submission := domain.QuizSubmission{
		UserID:  userID,
		Answers: answers.toJSONMap(),
	}
	if err := s.quizRepo.SaveSubmission(ctx, &submission); err != nil {
		// the derived preferences are already saved; losing the raw payload
		// is not fatal
		logger.Warn("Failed to save quiz submission", err)
	}

	quizSubmissionsTotal.Inc()

	return s.recommend(ctx, userID, record.ToPreferences(), topN, false)
}

// GetPreferences returns the user's saved preferences.
func (s *QuizService) GetPreferences(ctx context.Context, userID uint) (domain.PreferenceRecord, error) {
	record, ok, err := s.prefRepo.GetByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load preferences", err)
		return domain.PreferenceRecord{}, err
	}
	if !ok {
		return domain.PreferenceRecord{}, errors.New("preferences not found")
	}
	return record, nil
}

// UpdatePreferences overwrites the user's saved preferences directly,
// bypassing the quiz.
func (s *QuizService) UpdatePreferences(ctx context.Context, userID uint, answers QuizAnswers) (domain.PreferenceRecord, error) {
	if err := answers.validate(); err != nil {
		logger.Error("Invalid preferences", err)
		return domain.PreferenceRecord{}, err
	}

	record := answers.toRecord(userID)
	if err := s.prefRepo.Upsert(ctx, &record); err != nil {
		logger.Error("Failed to save preferences", err)
		return domain.PreferenceRecord{}, fmt.Errorf("failed to save preferences: %w", err)
	}

	return record, nil
}

// GetMatches ranks the catalog against the user's saved preferences.
func (s *QuizService) GetMatches(ctx context.Context, userID uint, topN int) ([]matching.RankedVehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	record, ok, err := s.prefRepo.GetByUser(ctx, userID)
	if err != nil {
		logger.Error("Failed to load preferences", err)
		return nil, err
	}
	if !ok {
		return nil, errors.New("preferences not found")
	}

	return s.recommend(ctx, userID, record.ToPreferences(), topN, true)
}

func (s *QuizService) recommend(ctx context.Context, userID uint, prefs domain.UserPreferences, topN int, useCache bool) ([]matching.RankedVehicle, error) {
	if topN <= 0 {
		topN = 5
	}

	if useCache && s.matchCache != nil {
		if recs, ok, err := s.matchCache.Get(ctx, userID, topN); err == nil && ok {
			return recs, nil
		}
	}

	cfg := s.loadConfig(ctx)

	vehicles, err := s.vehicleRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to load vehicles", err)
		return nil, fmt.Errorf("load vehicles: %w", err)
	}

	candidates := filterCandidates(vehicles, prefs, cfg)

	logger.Debug("match_recommend",
		"user_id", userID,
		"top_n", topN,
		"catalog_size", len(vehicles),
		"candidate_count", len(candidates),
	)

	recs, err := matching.Rank(candidates, &prefs, cfg, topN)
	if err != nil {
		return nil, err
	}

	if useCache && s.matchCache != nil {
		if err := s.matchCache.Set(ctx, userID, topN, recs, matchCacheTTL); err != nil {
			logger.Warn("Failed to cache match results", err)
		}
	}

	return recs, nil
}
