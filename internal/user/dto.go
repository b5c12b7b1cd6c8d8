// AngelaMos | 2026
// dto.go

package user

// Summary is the directory view agencies get of every account.
type Summary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func ToSummaryList(users []User) []Summary {
	out := make([]Summary, 0, len(users))
	for _, u := range users {
		out = append(out, Summary{
			ID:       u.ID,
			Username: u.Username,
			Email:    u.Email,
		})
	}
	return out
}
