package profile

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/entities"
	mock_services "github.com/sedtender/tender_portal/mocks/services"
	mock_utils "github.com/sedtender/tender_portal/mocks/utils"
	"github.com/sedtender/tender_portal/services"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testToken = "api-token"

type testSetup struct {
	mockPService     *mock_services.MockProfileService
	mockTimeProvider *mock_utils.MockTimeProvider
	cache            Cache
	manager          *Manager
	ctx              context.Context
}

func setupTest(t *testing.T) *testSetup {
	ctrl := gomock.NewController(t)
	mockPService := mock_services.NewMockProfileService(ctrl)
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)
	mockTimeProvider.EXPECT().Now().Return(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)).AnyTimes()

	cfg := &config.AppConfig{
		Session: config.SessionConfig{TTLSeconds: 3600},
		Score:   config.ScoreConfig{CircleRadius: 50},
	}
	cache := NewMemoryCache(cfg, mockTimeProvider)

	return &testSetup{
		mockPService:     mockPService,
		mockTimeProvider: mockTimeProvider,
		cache:            cache,
		manager:          NewManager(zap.NewNop(), cfg, mockPService, cache, mockTimeProvider),
		ctx:              context.Background(),
	}
}

func Test_Controller__should_start_from_cached_profile(t *testing.T) {
	setup := setupTest(t)
	assert.NoError(t, setup.cache.Set(setup.ctx, testToken, entities.Profile{"company_name": "Acme"}))

	c := setup.manager.Controller(setup.ctx, testToken)

	assert.Equal(t, entities.Profile{"company_name": "Acme"}, c.Profile())
	assert.Nil(t, setup.manager.Controller(setup.ctx, "other-token").Profile())
}

func Test_Load(t *testing.T) {
	tests := []struct {
		name        string
		cached      entities.Profile
		fetched     entities.Profile
		fetchErr    error
		wantProfile entities.Profile
		wantErr     error
	}{
		{
			name:        "should replace current profile with fetched one",
			cached:      entities.Profile{"company_name": "Old"},
			fetched:     entities.Profile{"company_name": "Acme", "cidb_grade": float64(5)},
			wantProfile: entities.Profile{"company_name": "Acme", "cidb_grade": float64(5)},
		},
		{
			name:        "should keep current profile when API has none",
			cached:      entities.Profile{"company_name": "Old"},
			wantProfile: entities.Profile{"company_name": "Old"},
		},
		{
			name:        "should return ErrUnauthorized when token is rejected",
			fetchErr:    services.ErrUnauthorized,
			wantErr:     services.ErrUnauthorized,
			wantProfile: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			if tt.cached != nil {
				assert.NoError(t, setup.cache.Set(setup.ctx, testToken, tt.cached))
			}
			setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).Return(tt.fetched, tt.fetchErr).Times(1)

			c := setup.manager.Controller(setup.ctx, testToken)
			err := c.Load(setup.ctx)

			assert.Equal(t, tt.wantErr, errors.Cause(err))
			assert.Equal(t, tt.wantProfile, c.Profile())

			cached, _ := setup.cache.Get(setup.ctx, testToken)
			assert.Equal(t, tt.wantProfile, cached)
		})
	}
}

func Test_SubmitSection__should_merge_fragment_and_refresh_scores(t *testing.T) {
	setup := setupTest(t)
	assert.NoError(t, setup.cache.Set(setup.ctx, testToken, entities.Profile{
		"company_name":    "Acme",
		"cidb_grade":      float64(3),
		"readiness_score": float64(40),
		"custom_field":    "kept",
	}))

	expectedFragment := entities.Profile{
		"cidb_grade":           float64(6),
		"cidb_work_categories": []interface{}{"CE"},
	}
	setup.mockPService.EXPECT().UpdateProfile(gomock.Any(), testToken, expectedFragment).
		Return(entities.Profile{
			"readiness_score":               float64(72),
			"profile_completion_percentage": float64(60),
			"company_name":                  "ignored",
		}, nil).Times(1)

	c := setup.manager.Controller(setup.ctx, testToken)
	err := c.SubmitSection(setup.ctx, CIDB, url.Values{
		"cidb_grade":           {"6"},
		"cidb_work_categories": {"CE"},
	})
	assert.NoError(t, err)

	wantProfile := entities.Profile{
		"company_name":                  "Acme",
		"cidb_grade":                    float64(6),
		"cidb_work_categories":          []interface{}{"CE"},
		"readiness_score":               float64(72),
		"profile_completion_percentage": float64(60),
		"custom_field":                  "kept",
	}
	assert.Equal(t, wantProfile, c.Profile())

	cached, err := setup.cache.Get(setup.ctx, testToken)
	assert.NoError(t, err)
	assert.Equal(t, wantProfile, cached)
}

func Test_SubmitSection__should_not_send_invalid_percentages(t *testing.T) {
	setup := setupTest(t)

	c := setup.manager.Controller(setup.ctx, testToken)
	err := c.SubmitSection(setup.ctx, BEE, url.Values{
		"bee_skills_development_percentage": {"-5"},
	})

	assert.Equal(t, services.ErrInvalidForm, errors.Cause(err))
	assert.Nil(t, c.Profile())
}

func Test_SubmitSection__should_fetch_profile_on_cache_miss(t *testing.T) {
	setup := setupTest(t)
	gomock.InOrder(
		setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).
			Return(entities.Profile{"company_name": "Acme", "cidb_grade": float64(5)}, nil).Times(1),
		setup.mockPService.EXPECT().UpdateProfile(gomock.Any(), testToken, entities.Profile{
			"previous_tender_wins":         float64(3),
			"previous_tender_applications": float64(10),
		}).Return(entities.Profile{"readiness_score": float64(40)}, nil).Times(1),
	)

	c := setup.manager.Controller(setup.ctx, testToken)
	err := c.SubmitSection(setup.ctx, Experience, url.Values{
		"previous_tender_wins":         {"3"},
		"previous_tender_applications": {"10"},
	})
	assert.NoError(t, err)

	data, _, err := c.Export(setup.ctx)
	assert.NoError(t, err)
	var exported entities.Profile
	assert.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, entities.Profile{
		"company_name":                 "Acme",
		"cidb_grade":                   float64(5),
		"previous_tender_wins":         float64(3),
		"previous_tender_applications": float64(10),
		"readiness_score":              float64(40),
	}, exported)
	assert.Equal(t, "Acme", c.View().Overview.CompanyName)
}

func Test_SubmitSection__should_not_save_when_profile_cannot_be_fetched(t *testing.T) {
	setup := setupTest(t)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).
		Return(nil, &services.UnauthorizedError{Message: "Token expired"}).Times(1)

	c := setup.manager.Controller(setup.ctx, testToken)
	err := c.SubmitSection(setup.ctx, Company, url.Values{"years_in_business": {"5"}})

	assert.Equal(t, services.ErrUnauthorized, errors.Cause(err))
	assert.Nil(t, c.Profile())
}

func Test_Export__should_fetch_profile_on_cache_miss(t *testing.T) {
	setup := setupTest(t)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).
		Return(entities.Profile{"company_name": "Acme"}, nil).Times(1)

	data, _, err := setup.manager.Controller(setup.ctx, testToken).Export(setup.ctx)

	assert.NoError(t, err)
	assert.Contains(t, string(data), `"company_name": "Acme"`)
	cached, _ := setup.cache.Get(setup.ctx, testToken)
	assert.Equal(t, entities.Profile{"company_name": "Acme"}, cached)
}

func Test_SubmitSection__should_keep_profile_when_update_fails(t *testing.T) {
	setup := setupTest(t)
	assert.NoError(t, setup.cache.Set(setup.ctx, testToken, entities.Profile{"years_in_business": float64(2)}))
	setup.mockPService.EXPECT().UpdateProfile(gomock.Any(), testToken, gomock.Any()).
		Return(nil, &services.APIError{Status: 422, Message: "invalid turnover"}).Times(1)

	c := setup.manager.Controller(setup.ctx, testToken)
	err := c.SubmitSection(setup.ctx, Company, url.Values{"years_in_business": {"5"}})

	assert.Error(t, err)
	assert.Equal(t, "invalid turnover", services.UserMessage(err))
	assert.Equal(t, entities.Profile{"years_in_business": float64(2)}, c.Profile())
}

func Test_Recalculate__should_create_profile_with_scores_when_none_loaded(t *testing.T) {
	setup := setupTest(t)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).Return(nil, nil).Times(1)
	setup.mockPService.EXPECT().RecalculateScore(gomock.Any(), testToken).
		Return(entities.Profile{
			"readiness_score":               float64(55),
			"profile_completion_percentage": float64(40),
			"last_score_calculation":        "2024-03-01T12:00:00",
		}, nil).Times(1)

	c := setup.manager.Controller(setup.ctx, testToken)
	err := c.Recalculate(setup.ctx)

	assert.NoError(t, err)
	assert.Equal(t, entities.Profile{
		"readiness_score":               float64(55),
		"profile_completion_percentage": float64(40),
		"last_score_calculation":        "2024-03-01T12:00:00",
	}, c.Profile())
	assert.Equal(t, "Fair. Consider completing more profile sections", c.View().Score.Description)
}

func Test_Export__should_return_ErrNoProfile_without_profile(t *testing.T) {
	setup := setupTest(t)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).Return(nil, nil).Times(1)

	_, _, err := setup.manager.Controller(setup.ctx, testToken).Export(setup.ctx)

	assert.Equal(t, services.ErrNoProfile, err)
	assert.Equal(t, "No profile data to export", services.UserMessage(err))
}

func Test_Export__should_round_trip_current_profile(t *testing.T) {
	setup := setupTest(t)
	p := entities.Profile{
		"company_name":         "Acme <Pty> & Sons",
		"readiness_score":      float64(72),
		"cidb_work_categories": []interface{}{"CE", "GB"},
		"unknown_nested":       map[string]interface{}{"a": []interface{}{float64(1), true, nil}},
	}
	assert.NoError(t, setup.cache.Set(setup.ctx, testToken, p))

	data, fileName, err := setup.manager.Controller(setup.ctx, testToken).Export(setup.ctx)
	assert.NoError(t, err)
	assert.Equal(t, "profile-export-2024-03-01.json", fileName)
	assert.Contains(t, string(data), "\n  \"company_name\": \"Acme <Pty> & Sons\"")

	var exported entities.Profile
	assert.NoError(t, json.Unmarshal(data, &exported))
	assert.Equal(t, p, exported)
}

func Test_Logout__should_forget_profile(t *testing.T) {
	setup := setupTest(t)
	assert.NoError(t, setup.cache.Set(setup.ctx, testToken, entities.Profile{"company_name": "Acme"}))

	c := setup.manager.Controller(setup.ctx, testToken)
	assert.NoError(t, c.Logout(setup.ctx))

	assert.Nil(t, c.Profile())
	assert.Nil(t, setup.manager.Controller(setup.ctx, testToken).Profile())
}
