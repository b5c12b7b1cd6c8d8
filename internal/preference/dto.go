// AngelaMos | 2026
// dto.go

package preference

import (
	"fmt"
	"time"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type CreatePreferenceRequest struct {
	DestinationID         *int64       `json:"destinationId"         validate:"omitempty,gt=0"`
	AdditionalDestination *string      `json:"additionalDestination" validate:"omitempty,max=200"`
	StartDate             *string      `json:"startDate"             validate:"omitempty,flexdate"`
	EndDate               *string      `json:"endDate"               validate:"omitempty,flexdate"`
	Travelers             *int         `json:"travelers"             validate:"omitempty,gte=1,max=100"`
	Budget                *int64       `json:"budget"                validate:"omitempty,gte=0"`
	SpecialRequests       *string      `json:"specialRequests"       validate:"omitempty,max=2000"`
	Preferences           core.JSONRaw `json:"preferences"`
}

type UpdatePreferenceRequest struct {
	DestinationID         *int64        `json:"destinationId"         validate:"omitempty,gt=0"`
	AdditionalDestination *string       `json:"additionalDestination" validate:"omitempty,max=200"`
	StartDate             *string       `json:"startDate"             validate:"omitempty,flexdate"`
	EndDate               *string       `json:"endDate"               validate:"omitempty,flexdate"`
	Travelers             *int          `json:"travelers"             validate:"omitempty,gte=1,max=100"`
	Budget                *int64        `json:"budget"                validate:"omitempty,gte=0"`
	SpecialRequests       *string       `json:"specialRequests"       validate:"omitempty,max=2000"`
	Preferences           *core.JSONRaw `json:"preferences"`
	Status                *string       `json:"status"                validate:"omitempty,oneof=pending active completed cancelled"`
}

func parseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := core.ParseDate(*s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &t, nil
}

func checkRange(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return fmt.Errorf("endDate before startDate: %w", core.ErrInvalidInput)
	}
	return nil
}
