// AngelaMos | 2026
// entity.go

package destination

import (
	"time"
)

type Destination struct {
	ID              int64     `db:"id"                 json:"id"`
	Name            string    `db:"name"               json:"name"`
	Country         string    `db:"country"            json:"country"`
	Description     *string   `db:"description"        json:"description"`
	ImageURL        *string   `db:"image_url"          json:"imageUrl"`
	BestTimeToVisit *string   `db:"best_time_to_visit" json:"bestTimeToVisit"`
	AvgTemperature  *string   `db:"avg_temperature"    json:"avgTemperature"`
	BeachSeason     *string   `db:"beach_season"       json:"beachSeason"`
	RainySeason     *string   `db:"rainy_season"       json:"rainySeason"`
	CreatedAt       time.Time `db:"created_at"         json:"createdAt"`
}

type Changes struct {
	Name            *string
	Country         *string
	Description     *string
	ImageURL        *string
	BestTimeToVisit *string
	AvgTemperature  *string
	BeachSeason     *string
	RainySeason     *string
}
