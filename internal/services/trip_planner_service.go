package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"wanderly/internal/catalog"
	"wanderly/internal/itinerary"
	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/repositories"
	"wanderly/pkg/utils"
)

const MaxTripDays = 30

type TripPlannerServiceInterface interface {
	Steps() []response_models.TripStepResponse
	Options() response_models.TripOptionsResponse
	Validate(step int, draft request_models.TripDraft) (*response_models.StepValidationResponse, error)
	Compose(draft request_models.TripDraft) (*response_models.ComposedTripResponse, error)
	Save(ctx context.Context, accountID string, draft request_models.TripDraft) (*response_models.ItineraryResponse, error)
}

type TripPlannerService struct {
	catalog       catalog.Catalog
	itineraryRepo repositories.ItineraryRepository
}

func NewTripPlannerService(c catalog.Catalog, itineraryRepo repositories.ItineraryRepository) TripPlannerServiceInterface {
	return &TripPlannerService{
		catalog:       c,
		itineraryRepo: itineraryRepo,
	}
}

func (t *TripPlannerService) Steps() []response_models.TripStepResponse {
	out := make([]response_models.TripStepResponse, 0, len(tripSteps))
	for i, s := range tripSteps {
		out = append(out, response_models.TripStepResponse{
			Index:    i,
			Key:      s.key,
			Title:    s.title,
			Required: s.required,
		})
	}
	return out
}

func (t *TripPlannerService) Options() response_models.TripOptionsResponse {
	return response_models.TripOptionsResponse{
		Budgets:     budgetOptions,
		TravelTypes: travelTypeOptions,
		Styles:      styleOptions,
		Constraints: constraintOptions,
	}
}

func (t *TripPlannerService) Validate(step int, draft request_models.TripDraft) (*response_models.StepValidationResponse, error) {
	if step < 0 || step >= len(tripSteps) {
		return nil, utils.ErrUnknownStep
	}
	reason := t.blocker(step, draft)
	return &response_models.StepValidationResponse{
		Step:       step,
		Key:        tripSteps[step].key,
		CanProceed: reason == "",
		Reason:     reason,
	}, nil
}

// blocker returns why the wizard cannot leave step, or "" when it can.
func (t *TripPlannerService) blocker(step int, draft request_models.TripDraft) string {
	switch step {
	case stepDestination:
		if len([]rune(strings.TrimSpace(draft.Destination))) < 2 {
			return "Enter a destination of at least 2 characters"
		}
	case stepTravelType:
		if strings.TrimSpace(draft.TravelType) == "" {
			return "Choose who you are traveling with"
		}
	case stepHotels:
		if draft.HotelID == nil {
			return "Select a hotel"
		}
		if _, ok := t.catalog.HotelByID(*draft.HotelID); !ok {
			return "Selected hotel is not available"
		}
	case stepPlaces:
		if len(t.catalog.PlacesByIDs(draft.PlaceIDs)) == 0 {
			return "Select at least one place to visit"
		}
	case stepFood:
		if len(t.catalog.RestaurantsByIDs(draft.RestaurantIDs)) == 0 {
			return "Select at least one restaurant"
		}
	}
	return ""
}

func (t *TripPlannerService) Compose(draft request_models.TripDraft) (*response_models.ComposedTripResponse, error) {
	for step := 0; step < stepItinerary; step++ {
		if reason := t.blocker(step, draft); reason != "" {
			return nil, fmt.Errorf("%w: %s", utils.ErrInvalidInput, reason)
		}
	}

	dayCount := utils.TripDayCount(draft.StartDate, draft.EndDate, itinerary.DefaultDayCount)
	if dayCount > MaxTripDays {
		return nil, fmt.Errorf("%w: a trip can span at most %d days", utils.ErrInvalidInput, MaxTripDays)
	}

	days := itinerary.Compose(itinerary.Selection{
		Places:      t.catalog.PlacesByIDs(draft.PlaceIDs),
		Restaurants: t.catalog.RestaurantsByIDs(draft.RestaurantIDs),
	}, dayCount)
	for i := range days {
		if label := utils.DayDateLabel(draft.StartDate, days[i].Day); label != "" {
			days[i].Date = label
		}
	}

	res := &response_models.ComposedTripResponse{
		Destination: strings.TrimSpace(draft.Destination),
		DayCount:    dayCount,
		Days:        days,
	}
	if hotel, ok := t.catalog.HotelByID(*draft.HotelID); ok {
		res.Hotel = &hotel
	}
	return res, nil
}

func (t *TripPlannerService) Save(ctx context.Context, accountID string, draft request_models.TripDraft) (*response_models.ItineraryResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	composed, err := t.Compose(draft)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(draft.Title)
	if title == "" {
		title = "Trip to " + composed.Destination
	}

	row := &db_models.Itinerary{
		AccountID:   owner,
		Title:       title,
		Destination: composed.Destination,
		StartDate:   draft.StartDate,
		EndDate:     draft.EndDate,
		Budget:      draft.Budget,
		TravelType:  draft.TravelType,
		Style:       draft.Style,
		Constraints: append([]string{}, draft.Constraints...),
		HotelID:     draft.HotelID,
		Days:        composed.Days,
	}
	if err := t.itineraryRepo.Create(ctx, row); err != nil {
		log.Printf("save composed trip: %v", err)
		return nil, utils.ErrDatabaseError
	}

	res := toItineraryResponse(row)
	return &res, nil
}
