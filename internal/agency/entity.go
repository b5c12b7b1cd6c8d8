// AngelaMos | 2026
// entity.go

package agency

import (
	"time"
)

type Agency struct {
	ID          int64     `db:"id"           json:"id"`
	UserID      int64     `db:"user_id"      json:"userId"`
	CompanyName string    `db:"company_name" json:"companyName"`
	Description *string   `db:"description"  json:"description"`
	WebsiteURL  *string   `db:"website_url"  json:"websiteUrl"`
	PhoneNumber *string   `db:"phone_number" json:"phoneNumber"`
	Verified    bool      `db:"verified"     json:"verified"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
}

type Changes struct {
	CompanyName *string
	Description *string
	WebsiteURL  *string
	PhoneNumber *string
	Verified    *bool
}
