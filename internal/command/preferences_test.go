package command

import (
	"context"
	"errors"
	"testing"

	"github.com/jbeshir/game-discovery/internal/datasources/mocks"
	"github.com/jbeshir/game-discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetPreferences(t *testing.T) {
	stored := domain.DefaultDiscoveryPreferences("alice")
	stored.SerendipityLevel = 0.7

	cases := []struct {
		name     string
		stored   domain.DiscoveryPreferences
		storeErr error
		want     domain.DiscoveryPreferences
		wantErr  bool
	}{
		{
			name:   "stored",
			stored: stored,
			want:   stored,
		},
		{
			name:     "defaults_when_absent",
			storeErr: domain.ErrNotFound,
			want:     domain.DefaultDiscoveryPreferences("alice"),
		},
		{
			name:     "store_failure",
			storeErr: errors.New("connection refused"),
			wantErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockProfileRepository(t)
			store.EXPECT().GetPreferences(mock.Anything, "alice").Return(tc.stored, tc.storeErr)

			got, err := NewGetPreferences(store).Execute(testContext(), "alice")

			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUpdatePreferences(t *testing.T) {
	existing := domain.DefaultDiscoveryPreferences("alice")
	existing.CategoryWeights = map[string]float64{domain.CategoryNovelty: 0.1}

	cases := []struct {
		name       string
		patch      domain.PreferencesPatch
		wantErr    error
		wantStored bool
		check      func(t *testing.T, got domain.DiscoveryPreferences)
	}{
		{
			name: "merges_fields",
			patch: domain.PreferencesPatch{
				CategoryWeights:        map[string]float64{domain.CategoryPopularity: 0.6},
				SerendipityLevel:       ptr(0.5),
				IncludeTrending:        ptr(false),
				DailyRecommendationCap: ptr(25),
				BlockedCategories:      []string{"horror"},
			},
			wantStored: true,
			check: func(t *testing.T, got domain.DiscoveryPreferences) {
				assert.Equal(t, "alice", got.UserID)
				assert.Equal(t, map[string]float64{
					domain.CategoryNovelty:    0.1,
					domain.CategoryPopularity: 0.6,
				}, got.CategoryWeights)
				assert.InDelta(t, 0.5, got.SerendipityLevel, 1e-9)
				assert.False(t, got.IncludeTrending)
				assert.True(t, got.IncludeFriendActivity)
				assert.Equal(t, 25, got.DailyRecommendationCap)
				assert.Equal(t, []string{"horror"}, got.BlockedCategories)
				assert.Equal(t, testNow, got.UpdatedAt)
			},
		},
		{
			name:    "unknown_category",
			patch:   domain.PreferencesPatch{CategoryWeights: map[string]float64{"vibes": 0.5}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "serendipity_out_of_range",
			patch:   domain.PreferencesPatch{SerendipityLevel: ptr(1.5)},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "weight_out_of_range",
			patch:   domain.PreferencesPatch{CategoryWeights: map[string]float64{domain.CategorySocial: 2}},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "cap_too_large",
			patch:   domain.PreferencesPatch{DailyRecommendationCap: ptr(5000)},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewMockProfileRepository(t)
			var stored domain.DiscoveryPreferences
			if tc.wantStored {
				store.EXPECT().GetPreferences(mock.Anything, "alice").Return(existing, nil)
				store.EXPECT().
					ReplacePreferences(mock.Anything, mock.Anything).
					RunAndReturn(func(_ context.Context, p domain.DiscoveryPreferences) error {
						stored = p
						return nil
					})
			}
			cmd := NewUpdatePreferences(store)
			cmd.now = fixedNow

			got, err := cmd.Execute(testContext(), UpdatePreferencesRequest{UserID: "alice", Patch: tc.patch})

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, got, stored)
			tc.check(t, got)
		})
	}
}

func TestUpdatePreferences_StoreFailure(t *testing.T) {
	store := mocks.NewMockProfileRepository(t)
	store.EXPECT().GetPreferences(mock.Anything, "alice").Return(domain.DiscoveryPreferences{}, domain.ErrNotFound)
	store.EXPECT().ReplacePreferences(mock.Anything, mock.Anything).Return(domain.ErrTransientDependency)

	_, err := NewUpdatePreferences(store).Execute(testContext(), UpdatePreferencesRequest{
		UserID: "alice",
		Patch:  domain.PreferencesPatch{IncludeTrending: ptr(true)},
	})

	require.ErrorIs(t, err, domain.ErrTransientDependency)
}
