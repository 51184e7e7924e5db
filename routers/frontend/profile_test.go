package frontend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services"
	"github.com/sedtender/tender_portal/testutils"
	"github.com/stretchr/testify/assert"
)

func Test_ProfilePage__should_render_login_form_without_token(t *testing.T) {
	setup := setupTest(t)
	setup.withToken("")
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/profile", nil)

	setup.router.ProfilePage(setup.testCtx)

	body := setup.w.Body.String()
	assert.Equal(t, http.StatusOK, setup.status())
	assert.Contains(t, body, `id="profileLoginForm"`)
	assert.NotContains(t, body, `id="cidbForm"`)
}

func Test_ProfilePage__should_populate_present_fields_only(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).Return(entities.Profile{
		"company_name":                      "Acme Builders",
		"cidb_registration_number":          "CIDB-123",
		"cidb_work_categories":              []interface{}{"GB"},
		"bee_ownership_percentage":          float64(51),
		"previous_tender_wins":              float64(3),
		"previous_tender_applications":      float64(10),
		"readiness_score":                   float64(72),
		"profile_completion_percentage":     float64(80),
		"updated_at":                        "2024-02-28T10:15:00Z",
		"bee_management_control_percentage": nil,
	}, nil).Times(1)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/profile", nil)

	setup.router.ProfilePage(setup.testCtx)

	body := setup.w.Body.String()
	assert.Equal(t, http.StatusOK, setup.status())
	assert.Contains(t, body, `name="cidb_registration_number" value="CIDB-123"`)
	assert.Contains(t, body, `name="cidb_grade" min="1" max="9" value=""`)
	assert.Contains(t, body, `data-validate="bee_ownership_percentage" value="51"`)
	assert.Contains(t, body, `data-validate="bee_management_control_percentage" value=""`)
	assert.Contains(t, body, `value="GB" checked`)
	assert.Contains(t, body, `<span id="successRate">30%</span>`)
	assert.Contains(t, body, `<dd id="overviewCompanyName">Acme Builders</dd>`)
	assert.Contains(t, body, `<dd id="overviewPhone">-</dd>`)
	assert.Contains(t, body, `<span id="completionBadge" class="badge">80%</span>`)
	assert.Contains(t, body, `<dd id="lastUpdated">2024-02-28</dd>`)
	assert.Contains(t, body, "Good! Your readiness score is above average")
	assert.Contains(t, body, `name="annual_turnover" inputmode="decimal" data-format="currency" value=""`)
	assert.Contains(t, body, `href="/profile/logout"`)
	assert.NotContains(t, body, `id="userName"`)

	cached, err := setup.cache.Get(context.Background(), testToken)
	assert.NoError(t, err)
	assert.Equal(t, "Acme Builders", cached["company_name"])
}

func Test_ProfilePage__should_show_load_error(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).
		Return(nil, &services.APIError{Status: http.StatusInternalServerError, Message: "database down"}).Times(1)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/profile", nil)

	setup.router.ProfilePage(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.status())
	assert.Contains(t, setup.w.Body.String(), "Error loading profile: database down")
}

func Test_ProfilePage__should_log_out_when_token_is_rejected(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).
		Return(nil, &services.UnauthorizedError{Message: "Token expired"}).Times(1)
	setup.mockStore.EXPECT().ClearToken(gomock.Any()).Return(nil).Times(1)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/profile", nil)

	setup.router.ProfilePage(setup.testCtx)

	assert.Equal(t, http.StatusSeeOther, setup.status())
	assert.Equal(t, loginPath, setup.w.Header().Get("Location"))
}

func Test_ProfileLogin(t *testing.T) {
	tests := []struct {
		name         string
		prep         func(*testSetup)
		params       map[string]string
		wantRedirect bool
		wantMessage  string
	}{
		{
			name:        "should require credentials",
			params:      map[string]string{"email": "jane@doe.com"},
			wantMessage: "Login required to access the profile system",
		},
		{
			name:   "should show login failure",
			params: map[string]string{"email": "jane@doe.com", "password": "wrongpwd"},
			prep: func(setup *testSetup) {
				setup.mockAService.EXPECT().Login(gomock.Any(), "jane@doe.com", "wrongpwd").
					Return("", &services.UnauthorizedError{Message: "Invalid email or password"}).Times(1)
			},
			wantMessage: "Login failed: Invalid email or password",
		},
		{
			name:   "should store token and reload profile",
			params: map[string]string{"email": "jane@doe.com", "password": "secret1"},
			prep: func(setup *testSetup) {
				setup.mockAService.EXPECT().Login(gomock.Any(), "jane@doe.com", "secret1").Return(testToken, nil).Times(1)
				setup.mockStore.EXPECT().SetToken(gomock.Any(), testToken).Return(nil).Times(1)
			},
			wantRedirect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			if tt.prep != nil {
				tt.prep(setup)
			}
			testutils.AddRequestWithFormParamsToCtx(setup.testCtx, http.MethodPost, tt.params)

			setup.router.ProfileLogin(setup.testCtx)

			if tt.wantRedirect {
				assert.Equal(t, http.StatusSeeOther, setup.status())
				assert.Equal(t, profilePath, setup.w.Header().Get("Location"))
				return
			}
			body := setup.w.Body.String()
			assert.Equal(t, http.StatusOK, setup.status())
			assert.Contains(t, body, tt.wantMessage)
			assert.Contains(t, body, `id="profileLoginForm"`)
		})
	}
}

func Test_SaveSection(t *testing.T) {
	tests := []struct {
		name        string
		section     string
		form        url.Values
		prep        func(*testSetup)
		wantStatus  int
		wantMessage string
		wantProfile entities.Profile
	}{
		{
			name:    "should merge saved section and score echo",
			section: "experience",
			form: url.Values{
				"previous_tender_wins":         {"3"},
				"previous_tender_applications": {"10"},
			},
			prep: func(setup *testSetup) {
				setup.mockPService.EXPECT().UpdateProfile(gomock.Any(), testToken, entities.Profile{
					"previous_tender_wins":         float64(3),
					"previous_tender_applications": float64(10),
				}).Return(entities.Profile{"readiness_score": float64(64), "company_name": "ignored"}, nil).Times(1)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "EXPERIENCE information saved successfully!",
			wantProfile: entities.Profile{
				"company_name":                 "Acme",
				"previous_tender_wins":         float64(3),
				"previous_tender_applications": float64(10),
				"readiness_score":              float64(64),
			},
		},
		{
			name:        "should block out of range percentage",
			section:     "bee",
			form:        url.Values{"bee_ownership_percentage": {"150"}},
			wantStatus:  http.StatusOK,
			wantMessage: "Percentage must be between 0 and 100",
			wantProfile: entities.Profile{"company_name": "Acme"},
		},
		{
			name:    "should show save failure",
			section: "cidb",
			form:    url.Values{"cidb_grade": {"5"}},
			prep: func(setup *testSetup) {
				setup.mockPService.EXPECT().UpdateProfile(gomock.Any(), testToken, entities.Profile{
					"cidb_grade":           float64(5),
					"cidb_work_categories": []interface{}{},
				}).Return(nil, &services.APIError{Status: http.StatusUnprocessableEntity, Message: "Invalid grade"}).Times(1)
			},
			wantStatus:  http.StatusOK,
			wantMessage: "Error saving profile: Invalid grade",
			wantProfile: entities.Profile{"company_name": "Acme"},
		},
		{
			name:        "should reject unknown section",
			section:     "finance",
			form:        url.Values{"budget": {"1"}},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Error saving profile: profile section does not exist",
			wantProfile: entities.Profile{"company_name": "Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			setup.withToken(testToken)
			assert.NoError(t, setup.cache.Set(context.Background(), testToken, entities.Profile{"company_name": "Acme"}))
			if tt.prep != nil {
				tt.prep(setup)
			}
			testutils.AddRequestWithFormValuesToCtx(setup.testCtx, http.MethodPost, "/profile/sections/"+tt.section, tt.form)
			testutils.AddUrlParamsToCtx(setup.testCtx, map[string]string{"section": tt.section})

			setup.router.SaveSection(setup.testCtx)

			assert.Equal(t, tt.wantStatus, setup.status())
			assert.Contains(t, setup.w.Body.String(), tt.wantMessage)
			cached, err := setup.cache.Get(context.Background(), testToken)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantProfile, cached)
		})
	}
}

func Test_SaveSection__should_keep_submitted_values_when_invalid(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	testutils.AddRequestWithFormValuesToCtx(setup.testCtx, http.MethodPost, "/profile/sections/bee", url.Values{
		"bee_level":                {"2"},
		"bee_ownership_percentage": {"-5"},
	})
	testutils.AddUrlParamsToCtx(setup.testCtx, map[string]string{"section": "bee"})

	setup.router.SaveSection(setup.testCtx)

	body := setup.w.Body.String()
	assert.Contains(t, body, "Percentage must be between 0 and 100")
	assert.Contains(t, body, `name="bee_level" min="1" max="8" value="2"`)
	assert.Contains(t, body, `data-validate="bee_ownership_percentage" value="-5"`)
}

func Test_SaveSection__should_log_out_when_token_is_rejected(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	assert.NoError(t, setup.cache.Set(context.Background(), testToken, entities.Profile{"company_name": "Acme"}))
	setup.mockPService.EXPECT().UpdateProfile(gomock.Any(), testToken, gomock.Any()).
		Return(nil, &services.UnauthorizedError{Message: "Token expired"}).Times(1)
	setup.mockStore.EXPECT().ClearToken(gomock.Any()).Return(nil).Times(1)
	testutils.AddRequestWithFormValuesToCtx(setup.testCtx, http.MethodPost, "/profile/sections/company", url.Values{
		"annual_turnover": {"1 250 000"},
	})
	testutils.AddUrlParamsToCtx(setup.testCtx, map[string]string{"section": "company"})

	setup.router.SaveSection(setup.testCtx)

	assert.Equal(t, http.StatusSeeOther, setup.status())
	assert.Equal(t, loginPath, setup.w.Header().Get("Location"))
}

func Test_RecalculateScore(t *testing.T) {
	tests := []struct {
		name        string
		scores      entities.Profile
		err         error
		wantMessage string
		wantScore   interface{}
	}{
		{
			name:        "should refresh score fields",
			scores:      entities.Profile{"readiness_score": float64(85), "profile_completion_percentage": float64(90)},
			wantMessage: "Score recalculated successfully!",
			wantScore:   float64(85),
		},
		{
			name:        "should show recalculation failure",
			err:         &services.APIError{Status: http.StatusInternalServerError, Message: "scoring unavailable"},
			wantMessage: "Error recalculating score: scoring unavailable",
			wantScore:   float64(40),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup := setupTest(t)
			setup.withToken(testToken)
			assert.NoError(t, setup.cache.Set(context.Background(), testToken, entities.Profile{"readiness_score": float64(40)}))
			setup.mockPService.EXPECT().RecalculateScore(gomock.Any(), testToken).Return(tt.scores, tt.err).Times(1)
			setup.testCtx.Request = httptest.NewRequest(http.MethodPost, "/profile/score", nil)

			setup.router.RecalculateScore(setup.testCtx)

			assert.Equal(t, http.StatusOK, setup.status())
			assert.Contains(t, setup.w.Body.String(), tt.wantMessage)
			cached, err := setup.cache.Get(context.Background(), testToken)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantScore, cached["readiness_score"])
		})
	}
}

func Test_ExportProfile__should_download_in_memory_profile(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	stored := entities.Profile{
		"company_name":         "Acme & Sons",
		"cidb_grade":           float64(5),
		"cidb_work_categories": []interface{}{"GB", "CE"},
		"custom_field":         map[string]interface{}{"nested": true},
	}
	assert.NoError(t, setup.cache.Set(context.Background(), testToken, stored))
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/profile/export", nil)

	setup.router.ExportProfile(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.status())
	assert.Equal(t, "attachment; filename=profile-export-2024-03-01.json", setup.w.Header().Get("Content-Disposition"))

	var exported entities.Profile
	assert.NoError(t, json.Unmarshal(setup.w.Body.Bytes(), &exported))
	assert.Equal(t, stored, exported)
}

func Test_ExportProfile__should_download_fetched_profile_when_none_is_cached(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).
		Return(entities.Profile{"company_name": "Acme", "cidb_grade": float64(5)}, nil).Times(1)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/profile/export", nil)

	setup.router.ExportProfile(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.status())
	var exported entities.Profile
	assert.NoError(t, json.Unmarshal(setup.w.Body.Bytes(), &exported))
	assert.Equal(t, entities.Profile{"company_name": "Acme", "cidb_grade": float64(5)}, exported)
}

func Test_SaveSection__should_merge_into_fetched_profile_when_none_is_cached(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).
		Return(entities.Profile{"company_name": "Acme", "cidb_grade": float64(5)}, nil).Times(1)
	setup.mockPService.EXPECT().UpdateProfile(gomock.Any(), testToken, gomock.Any()).
		Return(entities.Profile{"readiness_score": float64(40)}, nil).Times(1)
	testutils.AddRequestWithFormValuesToCtx(setup.testCtx, http.MethodPost, "/profile/sections/experience", url.Values{
		"previous_tender_wins":         {"3"},
		"previous_tender_applications": {"10"},
	})
	testutils.AddUrlParamsToCtx(setup.testCtx, map[string]string{"section": "experience"})

	setup.router.SaveSection(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.status())
	assert.Contains(t, setup.w.Body.String(), `<dd id="overviewCompanyName">Acme</dd>`)
	cached, err := setup.cache.Get(context.Background(), testToken)
	assert.NoError(t, err)
	assert.Equal(t, "Acme", cached["company_name"])
	assert.Equal(t, float64(5), cached["cidb_grade"])
}

func Test_ExportProfile__should_report_missing_profile(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	setup.mockPService.EXPECT().GetProfile(gomock.Any(), testToken).Return(nil, nil).Times(1)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/profile/export", nil)

	setup.router.ExportProfile(setup.testCtx)

	assert.Equal(t, http.StatusOK, setup.status())
	assert.Empty(t, setup.w.Header().Get("Content-Disposition"))
	assert.Contains(t, setup.w.Body.String(), "No profile data to export")
}

func Test_ProfileLogout__should_drop_session_and_profile(t *testing.T) {
	setup := setupTest(t)
	setup.withToken(testToken)
	assert.NoError(t, setup.cache.Set(context.Background(), testToken, entities.Profile{"company_name": "Acme"}))
	setup.mockStore.EXPECT().ClearToken(gomock.Any()).Return(nil).Times(1)
	setup.testCtx.Request = httptest.NewRequest(http.MethodGet, "/profile/logout", nil)

	setup.router.ProfileLogout(setup.testCtx)

	assert.Equal(t, http.StatusSeeOther, setup.status())
	assert.Equal(t, profilePath, setup.w.Header().Get("Location"))
	cached, err := setup.cache.Get(context.Background(), testToken)
	assert.NoError(t, err)
	assert.Nil(t, cached)
}
