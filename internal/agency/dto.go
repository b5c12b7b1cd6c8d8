// AngelaMos | 2026
// dto.go

package agency

type CreateAgencyRequest struct {
	CompanyName string  `json:"companyName" validate:"required,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	WebsiteURL  *string `json:"websiteUrl"  validate:"omitempty,max=255"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=50"`
}

type UpdateAgencyRequest struct {
	CompanyName *string `json:"companyName" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	WebsiteURL  *string `json:"websiteUrl"  validate:"omitempty,max=255"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,max=50"`
}

func (u UpdateAgencyRequest) changes() Changes {
	return Changes{
		CompanyName: u.CompanyName,
		Description: u.Description,
		WebsiteURL:  u.WebsiteURL,
		PhoneNumber: u.PhoneNumber,
	}
}

// asCreate is used when PATCH /my-agency finds no profile to update.
func (u UpdateAgencyRequest) asCreate() (CreateAgencyRequest, bool) {
	if u.CompanyName == nil || *u.CompanyName == "" {
		return CreateAgencyRequest{}, false
	}
	return CreateAgencyRequest{
		CompanyName: *u.CompanyName,
		Description: u.Description,
		WebsiteURL:  u.WebsiteURL,
		PhoneNumber: u.PhoneNumber,
	}, true
}
