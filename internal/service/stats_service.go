package service

import (
	"context"

	"github.com/spec-kit/matrimony-service/internal/domain"
	"github.com/spec-kit/matrimony-service/internal/repository"
)

// PlatformCounters feeds the public landing-page counters.
type PlatformCounters struct {
	TotalBiodata       int64 `json:"totalBiodata"`
	GirlsBiodata       int64 `json:"girlsBiodata"`
	BoysBiodata        int64 `json:"boysBiodata"`
	CompletedMarriages int64 `json:"completedMarriages"`
}

// BiodataStats feeds the admin dashboard.
type BiodataStats struct {
	TotalBiodata    int64 `json:"totalBiodata"`
	MaleBiodata     int64 `json:"maleBiodata"`
	FemaleBiodata   int64 `json:"femaleBiodata"`
	PremiumBiodata  int64 `json:"premiumBiodata"`
	ContactRequests int64 `json:"contactReqBiodata"`
}

// StatsService aggregates platform counters.
type StatsService struct {
	biodata  repository.BiodataRepository
	premiums repository.PremiumRequestRepository
	payments repository.PaymentRepository
	stories  repository.SuccessStoryRepository
}

// NewStatsService builds the service.
func NewStatsService(
	biodata repository.BiodataRepository,
	premiums repository.PremiumRequestRepository,
	payments repository.PaymentRepository,
	stories repository.SuccessStoryRepository,
) *StatsService {
	return &StatsService{biodata: biodata, premiums: premiums, payments: payments, stories: stories}
}

// Counters computes the public landing-page totals.
func (s *StatsService) Counters(ctx context.Context) (*PlatformCounters, error) {
	total, err := s.biodata.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	female := domain.BiodataTypeFemale
	girls, err := s.biodata.Count(ctx, &female)
	if err != nil {
		return nil, err
	}
	male := domain.BiodataTypeMale
	boys, err := s.biodata.Count(ctx, &male)
	if err != nil {
		return nil, err
	}
	marriages, err := s.stories.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &PlatformCounters{
		TotalBiodata:       total,
		GirlsBiodata:       girls,
		BoysBiodata:        boys,
		CompletedMarriages: marriages,
	}, nil
}

// Stats computes the admin dashboard figures.
func (s *StatsService) Stats(ctx context.Context) (*BiodataStats, error) {
	total, err := s.biodata.Count(ctx, nil)
	if err != nil {
		return nil, err
	}
	male := domain.BiodataTypeMale
	males, err := s.biodata.Count(ctx, &male)
	if err != nil {
		return nil, err
	}
	female := domain.BiodataTypeFemale
	females, err := s.biodata.Count(ctx, &female)
	if err != nil {
		return nil, err
	}
	premium, err := s.premiums.CountByTier(ctx, domain.TierPremium)
	if err != nil {
		return nil, err
	}
	contacts, err := s.payments.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &BiodataStats{
		TotalBiodata:    total,
		MaleBiodata:     males,
		FemaleBiodata:   females,
		PremiumBiodata:  premium,
		ContactRequests: contacts,
	}, nil
}
