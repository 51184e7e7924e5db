package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services"
	"github.com/sedtender/tender_portal/utils"
	"go.uber.org/zap"
)

// Manager creates the profile Controller of a request
type Manager struct {
	logger         *zap.Logger
	cfg            *config.AppConfig
	profileService services.ProfileService
	cache          Cache
	timeProvider   utils.TimeProvider
}

// NewManager creates a new Manager
func NewManager(logger *zap.Logger, cfg *config.AppConfig, profileService services.ProfileService, cache Cache, timeProvider utils.TimeProvider) *Manager {
	return &Manager{
		logger:         logger,
		cfg:            cfg,
		profileService: profileService,
		cache:          cache,
		timeProvider:   timeProvider,
	}
}

// Controller owns the profile of one session for the duration of a request.
// It starts from the last profile cached for the session and fetches it from the API on a cache miss
type Controller struct {
	manager *Manager
	token   string
	profile entities.Profile
}

// Controller creates the Controller for the session with the given token
func (m *Manager) Controller(ctx context.Context, token string) *Controller {
	cached, err := m.cache.Get(ctx, token)
	if err != nil {
		m.logger.Warn("could not read cached profile", zap.Error(err))
		cached = nil
	}

	return &Controller{
		manager: m,
		token:   token,
		profile: cached,
	}
}

// Profile returns the current profile, nil when none was loaded
func (c *Controller) Profile() entities.Profile {
	return c.profile
}

// View returns the page view of the current profile
func (c *Controller) View() View {
	return NewView(c.profile, c.manager.cfg.Score.CircleRadius)
}

// Load fetches the profile from the API.
// When the API has no profile for the user the current one is kept
func (c *Controller) Load(ctx context.Context) error {
	profile, err := c.manager.profileService.GetProfile(ctx, c.token)
	if err != nil {
		return errors.Wrap(err, "could not load profile")
	}

	if profile != nil {
		c.profile = profile
		c.save(ctx)
	}
	return nil
}

// ensureLoaded fetches the profile when none is cached for the session
func (c *Controller) ensureLoaded(ctx context.Context) error {
	if c.profile != nil {
		return nil
	}
	return c.Load(ctx)
}

// SubmitSection sends the submitted section form to the API and merges it into the current profile,
// refreshing the score fields from the API's response
func (c *Controller) SubmitSection(ctx context.Context, section Section, form url.Values) error {
	fragment, err := CollectSection(section, form)
	if err != nil {
		return err
	}
	if err := c.ensureLoaded(ctx); err != nil {
		return err
	}

	echo, err := c.manager.profileService.UpdateProfile(ctx, c.token, fragment)
	if err != nil {
		return errors.Wrap(err, fmt.Sprintf("could not save %s section", section))
	}

	if c.profile == nil {
		c.profile = entities.Profile{}
	}
	c.profile.Merge(fragment)
	c.profile.ApplyScores(echo)
	c.save(ctx)
	return nil
}

// Recalculate asks the API to score the profile again and refreshes the score fields
func (c *Controller) Recalculate(ctx context.Context) error {
	if err := c.ensureLoaded(ctx); err != nil {
		return err
	}

	scores, err := c.manager.profileService.RecalculateScore(ctx, c.token)
	if err != nil {
		return errors.Wrap(err, "could not recalculate score")
	}

	if c.profile == nil {
		c.profile = entities.Profile{}
	}
	c.profile.ApplyScores(scores)
	c.save(ctx)
	return nil
}

// Export returns the current profile as indented JSON and the name of the file to download it as
func (c *Controller) Export(ctx context.Context) ([]byte, string, error) {
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, "", err
	}
	if c.profile == nil {
		return nil, "", services.ErrNoProfile
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(c.profile); err != nil {
		return nil, "", errors.Wrap(err, "could not encode profile")
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), ExportFileName(c.manager.timeProvider.Now()), nil
}

// Logout forgets the current profile
func (c *Controller) Logout(ctx context.Context) error {
	c.profile = nil
	if err := c.manager.cache.Delete(ctx, c.token); err != nil {
		return errors.Wrap(err, "could not drop cached profile")
	}
	return nil
}

func (c *Controller) save(ctx context.Context) {
	if err := c.manager.cache.Set(ctx, c.token, c.profile); err != nil {
		c.manager.logger.Warn("could not cache profile", zap.Error(err))
	}
}

// ExportFileName is the name of a profile export made at t
func ExportFileName(t time.Time) string {
	return fmt.Sprintf("profile-export-%s.json", t.UTC().Format("2006-01-02"))
}
