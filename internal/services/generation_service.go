package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

const MaxGeneratedDays = 30

type GenerationServiceInterface interface {
	Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GeneratedItineraryResponse, error)
}

type GenerationService struct {
	generator utils.TextGenerator
	cache     mem.GenerationCache
	ttl       time.Duration
}

// NewGenerationService wires a provider and an optional cache. A nil cache
// or a non-positive ttl disables caching.
func NewGenerationService(generator utils.TextGenerator, cache mem.GenerationCache, ttl time.Duration) GenerationServiceInterface {
	return &GenerationService{
		generator: generator,
		cache:     cache,
		ttl:       ttl,
	}
}

func (g *GenerationService) Generate(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.GeneratedItineraryResponse, error) {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" || req.Days == 0 {
		return nil, fmt.Errorf("%w: Destination and days are required", utils.ErrInvalidInput)
	}
	if req.Days < 1 || req.Days > MaxGeneratedDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", utils.ErrInvalidInput, MaxGeneratedDays)
	}

	provider := g.generator.Provider()
	key := generationCacheKey(provider, destination, req.Days)

	if g.cacheEnabled() {
		text, ok, err := g.cache.Get(ctx, key)
		if err != nil {
			log.Printf("generation cache read failed: %v", err)
		} else if ok {
			return &response_models.GeneratedItineraryResponse{Itinerary: text, Provider: provider, Cached: true}, nil
		}
	}

	startTime := time.Now()
	text, err := g.generator.GenerateText(ctx, utils.BuildItineraryPrompt(destination, req.Days))
	if err != nil {
		return nil, err
	}
	log.Printf("%s generated a %d-day itinerary for %q in %s", provider, req.Days, destination, time.Since(startTime))

	if g.cacheEnabled() && text != utils.NoOutputText {
		if err := g.cache.Set(ctx, key, text, g.ttl); err != nil {
			log.Printf("generation cache write failed: %v", err)
		}
	}

	return &response_models.GeneratedItineraryResponse{Itinerary: text, Provider: provider}, nil
}

func (g *GenerationService) cacheEnabled() bool {
	return g.cache != nil && g.ttl > 0
}

func generationCacheKey(provider, destination string, days int) string {
	sum := sha256.Sum256([]byte(strings.ToLower(provider) + "|" + strings.ToLower(destination) + "|" + strconv.Itoa(days)))
	return hex.EncodeToString(sum[:])
}
