// AngelaMos | 2026
// entity.go

package preference

import (
	"time"

	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

type TravelPreference struct {
	ID                    int64        `db:"id"                     json:"id"`
	UserID                int64        `db:"user_id"                json:"userId"`
	DestinationID         *int64       `db:"destination_id"         json:"destinationId"`
	AdditionalDestination *string      `db:"additional_destination" json:"additionalDestination"`
	StartDate             *time.Time   `db:"start_date"             json:"startDate"`
	EndDate               *time.Time   `db:"end_date"               json:"endDate"`
	Travelers             int          `db:"travelers"              json:"travelers"`
	Budget                *int64       `db:"budget"                 json:"budget"`
	SpecialRequests       *string      `db:"special_requests"       json:"specialRequests"`
	Preferences           core.JSONRaw `db:"preferences"            json:"preferences"`
	Status                string       `db:"status"                 json:"status"`
	CreatedAt             time.Time    `db:"created_at"             json:"createdAt"`
}

func ownerOf(p *TravelPreference) int64 {
	return p.UserID
}

const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Changes struct {
	DestinationID         *int64
	AdditionalDestination *string
	StartDate             *time.Time
	EndDate               *time.Time
	Travelers             *int
	Budget                *int64
	SpecialRequests       *string
	Preferences           *core.JSONRaw
	Status                *string
}
