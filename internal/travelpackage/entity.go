// AngelaMos | 2026
// entity.go

package travelpackage

import (
	"time"
)

type Package struct {
	ID             int64     `db:"id"               json:"id"`
	AgencyID       int64     `db:"agency_id"        json:"agencyId"`
	PreferenceID   *int64    `db:"preference_id"    json:"preferenceId"`
	Title          string    `db:"title"            json:"title"`
	Description    *string   `db:"description"      json:"description"`
	Price          int64     `db:"price"            json:"price"`
	PricePerPerson bool      `db:"price_per_person" json:"pricePerPerson"`
	Accommodation  *string   `db:"accommodation"    json:"accommodation"`
	Transportation *string   `db:"transportation"   json:"transportation"`
	Meals          *string   `db:"meals"            json:"meals"`
	Activities     *string   `db:"activities"       json:"activities"`
	AdditionalInfo *string   `db:"additional_info"  json:"additionalInfo"`
	PackageType    string    `db:"package_type"     json:"packageType"`
	CreatedAt      time.Time `db:"created_at"       json:"createdAt"`
}

func agencyOf(p *Package) int64 {
	return p.AgencyID
}

const (
	TypeStandard = "standard"
	TypePremium  = "premium"
	TypeBudget   = "budget"
)

type Changes struct {
	Title          *string
	Description    *string
	Price          *int64
	PricePerPerson *bool
	Accommodation  *string
	Transportation *string
	Meals          *string
	Activities     *string
	AdditionalInfo *string
	PackageType    *string
}
