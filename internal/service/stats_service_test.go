package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/matrimony-service/internal/domain"
)

type fakePremiumRepo struct {
	requests []domain.PremiumRequest
	tiers    map[string]domain.Tier
}

func newFakePremiumRepo() *fakePremiumRepo {
	return &fakePremiumRepo{tiers: map[string]domain.Tier{}}
}

func (f *fakePremiumRepo) Create(_ context.Context, request *domain.PremiumRequest) error {
	f.requests = append(f.requests, *request)
	return nil
}

func (f *fakePremiumRepo) GetByID(_ context.Context, _ string) (*domain.PremiumRequest, error) {
	return nil, pgx.ErrNoRows
}

func (f *fakePremiumRepo) List(_ context.Context) ([]domain.PremiumRequest, error) {
	return f.requests, nil
}

func (f *fakePremiumRepo) ListByEmail(_ context.Context, email string) ([]domain.PremiumRequest, error) {
	var out []domain.PremiumRequest
	for _, request := range f.requests {
		if request.Email == email {
			out = append(out, request)
		}
	}
	return out, nil
}

func (f *fakePremiumRepo) SetTier(_ context.Context, id string, tier domain.Tier) error {
	f.tiers[id] = tier
	return nil
}

func (f *fakePremiumRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakePremiumRepo) CountByTier(_ context.Context, tier domain.Tier) (int64, error) {
	var n int64
	for _, granted := range f.tiers {
		if granted == tier {
			n++
		}
	}
	return n, nil
}

type fakeStoryRepo struct {
	stories []domain.SuccessStory
}

func (f *fakeStoryRepo) Create(_ context.Context, story *domain.SuccessStory) error {
	f.stories = append(f.stories, *story)
	return nil
}

func (f *fakeStoryRepo) List(_ context.Context) ([]domain.SuccessStory, error) {
	return f.stories, nil
}

func (f *fakeStoryRepo) Delete(_ context.Context, _ string) error { return nil }

func (f *fakeStoryRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.stories)), nil
}

type countingBiodataRepo struct {
	fakeBiodataRepo
}

func (c *countingBiodataRepo) Count(_ context.Context, biodataType *domain.BiodataType) (int64, error) {
	if biodataType == nil {
		return int64(len(c.created)), nil
	}
	var n int64
	for _, biodata := range c.created {
		if biodata.Type == *biodataType {
			n++
		}
	}
	return n, nil
}

func TestCounters_Aggregates(t *testing.T) {
	biodata := &countingBiodataRepo{}
	biodata.created = []domain.Biodata{
		{Type: domain.BiodataTypeMale},
		{Type: domain.BiodataTypeMale},
		{Type: domain.BiodataTypeFemale},
	}
	stories := &fakeStoryRepo{stories: []domain.SuccessStory{{}, {}}}

	svc := NewStatsService(biodata, newFakePremiumRepo(), newFakePaymentRepo(), stories)

	counters, err := svc.Counters(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), counters.TotalBiodata)
	assert.Equal(t, int64(1), counters.GirlsBiodata)
	assert.Equal(t, int64(2), counters.BoysBiodata)
	assert.Equal(t, int64(2), counters.CompletedMarriages)
}

func TestStats_Aggregates(t *testing.T) {
	biodata := &countingBiodataRepo{}
	biodata.created = []domain.Biodata{
		{Type: domain.BiodataTypeMale},
		{Type: domain.BiodataTypeFemale},
	}
	premiums := newFakePremiumRepo()
	premiums.tiers["req-1"] = domain.TierPremium
	payments := newFakePaymentRepo()
	payments.records = []domain.Payment{{Email: "a@example.com"}}

	svc := NewStatsService(biodata, premiums, payments, &fakeStoryRepo{})

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalBiodata)
	assert.Equal(t, int64(1), stats.MaleBiodata)
	assert.Equal(t, int64(1), stats.FemaleBiodata)
	assert.Equal(t, int64(1), stats.PremiumBiodata)
	assert.Equal(t, int64(1), stats.ContactRequests)
}

func TestPremiumApprove_ElevatesTier(t *testing.T) {
	premiums := newFakePremiumRepo()
	svc := NewPremiumService(premiums, nil)

	created, err := svc.Create(context.Background(), PremiumRequestInput{Email: "user@example.com"})
	require.NoError(t, err)
	assert.Equal(t, domain.TierStandard, created.Tier, "requests start at the standard tier")

	require.NoError(t, svc.Approve(context.Background(), "req-1"))
	assert.Equal(t, domain.TierPremium, premiums.tiers["req-1"])
}
