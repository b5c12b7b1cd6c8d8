// AngelaMos | 2026
// entity.go

package user

import (
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

func (u *User) IsAgency() bool {
	return u.Role == RoleAgency
}

const (
	RoleTraveler = "traveler"
	RoleAgency   = "agency"
)

// Changes lists the columns a partial update may touch. Nil fields are
// left as they are.
type Changes struct {
	Email        *string
	FullName     *string
	Role         *string
	PasswordHash *string
}
