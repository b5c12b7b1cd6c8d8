// AngelaMos | 2026
// dto.go

package travelpackage

// CreatePackageRequest accepts an agencyId for client compatibility, but
// the stored value always comes from the caller's own agency profile.
type CreatePackageRequest struct {
	AgencyID       *int64  `json:"agencyId"`
	PreferenceID   *int64  `json:"preferenceId"   validate:"omitempty,gt=0"`
	Title          string  `json:"title"          validate:"required,max=200"`
	Description    *string `json:"description"    validate:"omitempty,max=5000"`
	Price          *int64  `json:"price"          validate:"required,gte=0"`
	PricePerPerson *bool   `json:"pricePerPerson"`
	Accommodation  *string `json:"accommodation"  validate:"omitempty,max=2000"`
	Transportation *string `json:"transportation" validate:"omitempty,max=2000"`
	Meals          *string `json:"meals"          validate:"omitempty,max=2000"`
	Activities     *string `json:"activities"     validate:"omitempty,max=2000"`
	AdditionalInfo *string `json:"additionalInfo" validate:"omitempty,max=2000"`
	PackageType    *string `json:"packageType"    validate:"omitempty,oneof=standard premium budget"`
}

type UpdatePackageRequest struct {
	Title          *string `json:"title"          validate:"omitempty,min=1,max=200"`
	Description    *string `json:"description"    validate:"omitempty,max=5000"`
	Price          *int64  `json:"price"          validate:"omitempty,gte=0"`
	PricePerPerson *bool   `json:"pricePerPerson"`
	Accommodation  *string `json:"accommodation"  validate:"omitempty,max=2000"`
	Transportation *string `json:"transportation" validate:"omitempty,max=2000"`
	Meals          *string `json:"meals"          validate:"omitempty,max=2000"`
	Activities     *string `json:"activities"     validate:"omitempty,max=2000"`
	AdditionalInfo *string `json:"additionalInfo" validate:"omitempty,max=2000"`
	PackageType    *string `json:"packageType"    validate:"omitempty,oneof=standard premium budget"`
}

func (r UpdatePackageRequest) changes() Changes {
	return Changes{
		Title:          r.Title,
		Description:    r.Description,
		Price:          r.Price,
		PricePerPerson: r.PricePerPerson,
		Accommodation:  r.Accommodation,
		Transportation: r.Transportation,
		Meals:          r.Meals,
		Activities:     r.Activities,
		AdditionalInfo: r.AdditionalInfo,
		PackageType:    r.PackageType,
	}
}
