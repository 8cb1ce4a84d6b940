package service

import (
	"context"
	"encoding/json"
	"time"

	"study-canvas-be/internal/dto"
	"study-canvas-be/internal/pkg/logger"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const (
	preferencesKey      = "canvas:preferences"
	preferencesCacheTTL = 5 * time.Minute
)

var defaultPreferences = dto.PreferencesResponse{
	Theme:           "system",
	DefaultNoteKind: "note",
	SnapToGrid:      true,
}

type IPreferenceService interface {
	Get(ctx context.Context) (*dto.PreferencesResponse, error)
	Update(ctx context.Context, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error)
}

// preferenceService keeps canvas preferences in redis with an in-process
// cache in front. When redis is not wired, the local cache is the only
// store and preferences reset on restart.
type preferenceService struct {
	redisClient *redis.Client
	localCache  *gocache.Cache
	logger      logger.ILogger
}

func NewPreferenceService(redisClient *redis.Client, log logger.ILogger) IPreferenceService {
	return &preferenceService{
		redisClient: redisClient,
		localCache:  gocache.New(preferencesCacheTTL, 10*time.Minute),
		logger:      log,
	}
}

func (s *preferenceService) Get(ctx context.Context) (*dto.PreferencesResponse, error) {
	if cached, found := s.localCache.Get(preferencesKey); found {
		prefs := cached.(dto.PreferencesResponse)
		return &prefs, nil
	}

	prefs := defaultPreferences
	if s.redisClient != nil {
		raw, err := s.redisClient.Get(ctx, preferencesKey).Result()
		switch {
		case err == redis.Nil:
			// first run, defaults apply
		case err != nil:
			s.logger.Warn("PreferenceService", "Failed to read preferences from redis", map[string]interface{}{
				"error": err.Error(),
			})
		default:
			if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
				s.logger.Warn("PreferenceService", "Corrupt preferences payload, using defaults", map[string]interface{}{
					"error": err.Error(),
				})
				prefs = defaultPreferences
			}
		}
	}

	s.localCache.Set(preferencesKey, prefs, gocache.DefaultExpiration)
	return &prefs, nil
}

func (s *preferenceService) Update(ctx context.Context, req *dto.UpdatePreferencesRequest) (*dto.PreferencesResponse, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	prefs := *current
	if req.Theme != nil {
		prefs.Theme = *req.Theme
	}
	if req.DefaultNoteKind != nil {
		prefs.DefaultNoteKind = *req.DefaultNoteKind
	}
	if req.SnapToGrid != nil {
		prefs.SnapToGrid = *req.SnapToGrid
	}

	if s.redisClient != nil {
		payload, err := json.Marshal(prefs)
		if err != nil {
			return nil, err
		}
		if err := s.redisClient.Set(ctx, preferencesKey, payload, 0).Err(); err != nil {
			return nil, err
		}
	}

	s.localCache.Set(preferencesKey, prefs, gocache.DefaultExpiration)
	return &prefs, nil
}
