// AngelaMos | 2026
// seed.go

package destination

const unsplashParams = "?ixlib=rb-1.2.1&auto=format&fit=crop&w=600&q=80"

type seedRow struct {
	name            string
	country         string
	description     string
	imageURL        string
	bestTimeToVisit string
	avgTemperature  string
	beachSeason     string
	rainySeason     string
}

// seedRows is the fixed catalogue loaded into an empty destinations table.
var seedRows = []seedRow{
	{
		name:            "Goa",
		country:         "India",
		description:     "Famous beach destination with golden sands, vibrant nightlife, Portuguese architecture, and water sports.",
		imageURL:        "https://images.unsplash.com/photo-1512343879784-a960bf40e7f2" + unsplashParams,
		bestTimeToVisit: "Nov-Feb",
		avgTemperature:  "29°C (84°F)",
		beachSeason:     "Oct-Mar",
		rainySeason:     "June to September",
	},
	{
		name:            "Kerala",
		country:         "India",
		description:     "God's own country featuring serene backwaters, lush green landscapes, Ayurvedic treatments, and rich culture.",
		imageURL:        "https://images.unsplash.com/photo-1602216056096-3b40cc0c9944" + unsplashParams,
		bestTimeToVisit: "Sep-Mar",
		avgTemperature:  "28°C (82°F)",
		beachSeason:     "Oct-Feb",
		rainySeason:     "June to August",
	},
	{
		name:            "Rajasthan",
		country:         "India",
		description:     "Land of kings with majestic forts, vibrant culture, colorful festivals, and vast desert landscapes.",
		imageURL:        "https://images.unsplash.com/photo-1599661046827-9a64ae016537" + unsplashParams,
		bestTimeToVisit: "Oct-Mar",
		avgTemperature:  "25°C (77°F)",
		beachSeason:     "N/A",
		rainySeason:     "July to September",
	},
	{
		name:            "Hampi",
		country:         "India",
		description:     "UNESCO World Heritage site with ancient ruins, magnificent temples, and boulder-strewn landscapes.",
		imageURL:        "https://images.unsplash.com/photo-1571536802807-30aa00c0e864" + unsplashParams,
		bestTimeToVisit: "Oct-Feb",
		avgTemperature:  "27°C (81°F)",
		beachSeason:     "N/A",
		rainySeason:     "June to September",
	},
	{
		name:            "Pondicherry",
		country:         "India",
		description:     "Former French colony with charming colonial architecture, peaceful beaches, and spiritual ambiance.",
		imageURL:        "https://images.unsplash.com/photo-1582810803949-3e40d51e1c2f" + unsplashParams,
		bestTimeToVisit: "Oct-Mar",
		avgTemperature:  "30°C (86°F)",
		beachSeason:     "Nov-Feb",
		rainySeason:     "October to December",
	},
	{
		name:            "Gokarna",
		country:         "India",
		description:     "Serene coastal town with pristine beaches, temple trails, and a laid-back hippie vibe.",
		imageURL:        "https://images.unsplash.com/photo-1623853476319-21c484f856fb" + unsplashParams,
		bestTimeToVisit: "Oct-Mar",
		avgTemperature:  "28°C (82°F)",
		beachSeason:     "Nov-Feb",
		rainySeason:     "June to September",
	},
	{
		name:            "Kanyakumari",
		country:         "India",
		description:     "India's southernmost tip where three oceans meet, with spectacular sunrises and sunsets.",
		imageURL:        "https://images.unsplash.com/photo-1624867903645-809450dc647c" + unsplashParams,
		bestTimeToVisit: "Oct-Feb",
		avgTemperature:  "30°C (86°F)",
		beachSeason:     "Nov-Feb",
		rainySeason:     "June to September",
	},
	{
		name:            "Varanasi",
		country:         "India",
		description:     "One of the world's oldest living cities, with sacred ghats, ancient temples, and spiritual experiences.",
		imageURL:        "https://images.unsplash.com/photo-1561361058-c24cecda1510" + unsplashParams,
		bestTimeToVisit: "Oct-Mar",
		avgTemperature:  "25°C (77°F)",
		beachSeason:     "N/A",
		rainySeason:     "July to September",
	},
}
