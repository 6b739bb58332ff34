package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"wanderly/internal/itinerary"
	"wanderly/internal/models/db_models"
	"wanderly/internal/models/request_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/repositories"
	"wanderly/pkg/utils"
)

type ItineraryServiceInterface interface {
	List(ctx context.Context, accountID string, page, pageSize int) ([]response_models.ItineraryResponse, error)
	Create(ctx context.Context, accountID string, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
	Get(ctx context.Context, accountID, id string) (*response_models.ItineraryResponse, error)
	Update(ctx context.Context, accountID, id string, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error)
	Delete(ctx context.Context, accountID, id string) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
}

func NewItineraryService(itineraryRepo repositories.ItineraryRepository) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
	}
}

func (s *ItineraryService) List(ctx context.Context, accountID string, page, pageSize int) ([]response_models.ItineraryResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}

	rows, err := s.itineraryRepo.ListByAccount(ctx, owner, page, pageSize)
	if err != nil {
		log.Printf("list itineraries for %s: %v", accountID, err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItineraryResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toItineraryResponse(&rows[i]))
	}
	return out, nil
}

func (s *ItineraryService) Create(ctx context.Context, accountID string, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	if err := validateItineraryRequest(req); err != nil {
		return nil, err
	}

	row := &db_models.Itinerary{AccountID: owner}
	applyItineraryRequest(row, req)

	if err := s.itineraryRepo.Create(ctx, row); err != nil {
		log.Printf("create itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}

	res := toItineraryResponse(row)
	return &res, nil
}

func (s *ItineraryService) Get(ctx context.Context, accountID, id string) (*response_models.ItineraryResponse, error) {
	row, err := loadOwnedItinerary(ctx, s.itineraryRepo, accountID, id)
	if err != nil {
		return nil, err
	}
	res := toItineraryResponse(row)
	return &res, nil
}

func (s *ItineraryService) Update(ctx context.Context, accountID, id string, req request_models.ItineraryRequest) (*response_models.ItineraryResponse, error) {
	if err := validateItineraryRequest(req); err != nil {
		return nil, err
	}
	row, err := loadOwnedItinerary(ctx, s.itineraryRepo, accountID, id)
	if err != nil {
		return nil, err
	}

	applyItineraryRequest(row, req)

	matched, err := s.itineraryRepo.UpdateForAccount(ctx, row)
	if err != nil {
		log.Printf("update itinerary %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if !matched {
		return nil, utils.ErrItineraryNotFound
	}

	res := toItineraryResponse(row)
	return &res, nil
}

func (s *ItineraryService) Delete(ctx context.Context, accountID, id string) error {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return err
	}
	itineraryID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrItineraryNotFound
	}

	deleted, err := s.itineraryRepo.DeleteForAccount(ctx, itineraryID, owner)
	if err != nil {
		log.Printf("delete itinerary %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	if !deleted {
		return utils.ErrItineraryNotFound
	}
	return nil
}

// loadOwnedItinerary maps malformed ids and rows owned by other accounts to
// ErrItineraryNotFound so foreign ids look the same as missing ones.
func loadOwnedItinerary(ctx context.Context, repo repositories.ItineraryRepository, accountID, id string) (*db_models.Itinerary, error) {
	owner, err := parseAccountID(accountID)
	if err != nil {
		return nil, err
	}
	itineraryID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrItineraryNotFound
	}

	row, err := repo.FindForAccount(ctx, itineraryID, owner)
	if err != nil {
		log.Printf("find itinerary %s: %v", id, err)
		return nil, utils.ErrDatabaseError
	}
	if row == nil {
		return nil, utils.ErrItineraryNotFound
	}
	return row, nil
}

func parseAccountID(accountID string) (uuid.UUID, error) {
	id, err := uuid.Parse(accountID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidCredentials
	}
	return id, nil
}

func validateItineraryRequest(req request_models.ItineraryRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return fmt.Errorf("%w: title is required", utils.ErrInvalidInput)
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return fmt.Errorf("%w: end_date is before start_date", utils.ErrInvalidInput)
	}
	return validateDays(req.Days)
}

// validateDays enforces ascending unique day numbers and titled activities.
func validateDays(days itinerary.Itinerary) error {
	prev := 0
	for _, d := range days {
		if d.Day <= prev {
			return fmt.Errorf("%w: day numbers must be positive, unique and ascending", utils.ErrInvalidInput)
		}
		prev = d.Day
		for _, a := range d.Activities {
			if strings.TrimSpace(a.Title) == "" {
				return fmt.Errorf("%w: activity on day %d has no title", utils.ErrInvalidInput, d.Day)
			}
		}
	}
	return nil
}

func applyItineraryRequest(row *db_models.Itinerary, req request_models.ItineraryRequest) {
	row.Title = strings.TrimSpace(req.Title)
	row.Destination = strings.TrimSpace(req.Destination)
	row.StartDate = req.StartDate
	row.EndDate = req.EndDate
	row.Budget = req.Budget
	row.TravelType = req.TravelType
	row.Style = req.Style
	row.Constraints = append([]string{}, req.Constraints...)
	row.HotelID = req.HotelID
	row.Days = req.Days.Clone()
	if row.Days == nil {
		row.Days = itinerary.Itinerary{}
	}
	row.GeneratedText = req.GeneratedText
}

func toItineraryResponse(row *db_models.Itinerary) response_models.ItineraryResponse {
	res := response_models.ItineraryResponse{
		ID:            row.ID.String(),
		Title:         row.Title,
		Destination:   row.Destination,
		Budget:        row.Budget,
		TravelType:    row.TravelType,
		Style:         row.Style,
		Constraints:   append([]string{}, row.Constraints...),
		HotelID:       row.HotelID,
		Days:          row.Days,
		GeneratedText: row.GeneratedText,
		CreatedAt:     utils.FormatRFC3339(row.Created()),
		UpdatedAt:     utils.FormatRFC3339(row.Updated()),
	}
	if res.Days == nil {
		res.Days = itinerary.Itinerary{}
	}
	if row.StartDate != nil {
		res.StartDate = row.StartDate.Format("2006-01-02")
	}
	if row.EndDate != nil {
		res.EndDate = row.EndDate.Format("2006-01-02")
	}
	return res
}
