package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"wanderly/internal/itinerary"
	"wanderly/internal/models/db_models"
	"wanderly/internal/models/response_models"
	"wanderly/internal/repositories"
	mem "wanderly/pkg/memcache"
	"wanderly/pkg/utils"
)

const transcriptLimit = 200

type AssistantServiceInterface interface {
	// Interpret runs one instruction against a snapshot without storage.
	Interpret(days itinerary.Itinerary, instruction string) itinerary.Result
	ApplyToItinerary(ctx context.Context, accountID, itineraryID, instruction string) (*response_models.AssistantTurnResponse, error)
	Transcript(ctx context.Context, accountID, itineraryID string) ([]response_models.AssistantMessageResponse, error)
	PurgeTranscripts(ctx context.Context, cutoff time.Time) (int64, error)
}

type AssistantService struct {
	interpreter   *itinerary.Interpreter
	itineraryRepo repositories.ItineraryRepository
	messageRepo   repositories.AssistantMessageRepository
	locks         *mem.KeyedLocker
	now           func() time.Time
}

func NewAssistantService(
	interpreter *itinerary.Interpreter,
	itineraryRepo repositories.ItineraryRepository,
	messageRepo repositories.AssistantMessageRepository,
	locks *mem.KeyedLocker,
) AssistantServiceInterface {
	return &AssistantService{
		interpreter:   interpreter,
		itineraryRepo: itineraryRepo,
		messageRepo:   messageRepo,
		locks:         locks,
		now:           time.Now,
	}
}

func (a *AssistantService) Interpret(days itinerary.Itinerary, instruction string) itinerary.Result {
	if days == nil {
		days = itinerary.Itinerary{}
	}
	return a.interpreter.Interpret(days, instruction)
}

// ApplyToItinerary loads, interprets and persists under a per-itinerary lock
// so concurrent instructions see each other's results.
func (a *AssistantService) ApplyToItinerary(ctx context.Context, accountID, itineraryID, instruction string) (*response_models.AssistantTurnResponse, error) {
	instruction = strings.TrimSpace(instruction)
	if instruction == "" {
		return nil, fmt.Errorf("%w: instruction is required", utils.ErrInvalidInput)
	}

	unlock := a.locks.Lock(itineraryID)
	defer unlock()

	row, err := loadOwnedItinerary(ctx, a.itineraryRepo, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	result := a.interpreter.Interpret(row.Days, instruction)
	if result.Changed() {
		row.Days = result.Itinerary
		if err := a.itineraryRepo.UpdateDays(ctx, row); err != nil {
			log.Printf("save assistant change on %s: %v", itineraryID, err)
			return nil, utils.ErrDatabaseError
		}
	}

	a.record(ctx, row, instruction, result)

	days := result.Itinerary
	if days == nil {
		days = itinerary.Itinerary{}
	}
	return &response_models.AssistantTurnResponse{
		ItineraryID: row.ID.String(),
		Message:     result.Message,
		Intent:      result.Intent,
		Outcome:     result.Outcome,
		Changed:     result.Changed(),
		Added:       result.Added,
		Removed:     result.Removed,
		Days:        days,
	}, nil
}

// record appends the exchange to the transcript. A failed write is logged
// and does not undo an applied change.
func (a *AssistantService) record(ctx context.Context, row *db_models.Itinerary, instruction string, result itinerary.Result) {
	seq := a.now().UnixNano()
	messages := []*db_models.AssistantMessage{
		{
			ItineraryID: row.ID,
			AccountID:   row.AccountID,
			Sequence:    seq,
			Role:        db_models.RoleUser,
			Content:     instruction,
		},
		{
			ItineraryID: row.ID,
			AccountID:   row.AccountID,
			Sequence:    seq + 1,
			Role:        db_models.RoleAssistant,
			Content:     result.Message,
			Outcome:     string(result.Outcome),
		},
	}
	if err := a.messageRepo.Append(ctx, messages); err != nil {
		log.Printf("append transcript for %s: %v", row.ID, err)
	}
}

func (a *AssistantService) Transcript(ctx context.Context, accountID, itineraryID string) ([]response_models.AssistantMessageResponse, error) {
	row, err := loadOwnedItinerary(ctx, a.itineraryRepo, accountID, itineraryID)
	if err != nil {
		return nil, err
	}

	messages, err := a.messageRepo.ListByItinerary(ctx, row.ID, transcriptLimit)
	if err != nil {
		log.Printf("list transcript for %s: %v", itineraryID, err)
		return nil, utils.ErrDatabaseError
	}

	if len(messages) == 0 {
		return []response_models.AssistantMessageResponse{{
			ID:      "welcome",
			Role:    db_models.RoleAssistant,
			Content: itinerary.WelcomeMessage,
		}}, nil
	}

	out := make([]response_models.AssistantMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, response_models.AssistantMessageResponse{
			ID:        m.ID.String(),
			Role:      m.Role,
			Content:   m.Content,
			Outcome:   m.Outcome,
			CreatedAt: utils.FormatRFC3339(m.Created()),
		})
	}
	return out, nil
}

func (a *AssistantService) PurgeTranscripts(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := a.messageRepo.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, utils.ErrDatabaseError
	}
	return n, nil
}
