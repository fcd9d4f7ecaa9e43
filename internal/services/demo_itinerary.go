package services

import (
	"fmt"

	"voyagemind/internal/models/response_models"
)

type demoActivity struct {
	category string
	title    string
	desc     string
}

type demoDestination struct {
	activities []demoActivity
	hotel      response_models.DayHotel
}

var demoDestinations = map[string]demoDestination{
	"Paris": {
		activities: []demoActivity{
			{"CULTURE", "Eiffel Tower", "Iconic landmark with stunning city views. Book skip-the-line tickets in advance."},
			{"FOOD", "Le Marais Café", "Authentic French croissants and coffee in the historic Jewish Quarter."},
			{"CULTURE", "Louvre Museum", "Home to the Mona Lisa. Arrive early to avoid crowds."},
			{"NATURE", "Luxembourg Gardens", "Beautiful park perfect for a leisurely afternoon stroll."},
			{"SHOPPING", "Champs-Élysées", "World-famous shopping avenue with luxury boutiques."},
			{"NIGHTLIFE", "Seine Evening Cruise", "City of lights from the water after sunset."},
		},
		hotel: response_models.DayHotel{
			Name:    "Hôtel Le Marais Boutique",
			Area:    "Le Marais",
			WhyHere: "Walking distance to major attractions.",
		},
	},
	"Tokyo": {
		activities: []demoActivity{
			{"CULTURE", "Senso-ji Temple", "Ancient Buddhist temple in Asakusa. Visit early morning for fewer crowds."},
			{"FOOD", "Tsukiji Outer Market", "Fresh sushi and street food paradise."},
			{"SHOPPING", "Shibuya Crossing", "World's busiest intersection. Experience the organized chaos."},
			{"NATURE", "Meiji Shrine", "Peaceful forested oasis in the heart of the city."},
			{"NIGHTLIFE", "Golden Gai", "Tiny bars with big character in Shinjuku."},
			{"CULTURE", "teamLab Borderless", "Immersive digital art museum. Book tickets well in advance."},
		},
		hotel: response_models.DayHotel{
			Name:    "Shinjuku Granbell Hotel",
			Area:    "Shinjuku",
			WhyHere: "Near major train stations with city views.",
		},
	},
}

var demoDayTitles = []string{
	"Arrival & Discovery",
	"Deep Exploration",
	"Cultural Immersion",
	"Adventure Day",
	"Leisure & Farewell",
}

var demoTimes = [][2]string{
	{"9:00 AM", "11:30 AM"},
	{"2:00 PM", "4:30 PM"},
	{"7:00 PM", "9:00 PM"},
}

// DemoItinerary produces canned data for demos and for running without an
// API key. It goes through the same presentation tables as real output.
func DemoItinerary(destination string, duration int) *response_models.Itinerary {
	data, ok := demoDestinations[destination]
	if !ok {
		data = demoDestination{
			activities: []demoActivity{
				{"CULTURE", fmt.Sprintf("%s City Tour", destination), "Explore the main landmarks and historical sites with a local guide."},
				{"FOOD", "Local Cuisine Experience", "Taste authentic regional dishes at a popular local restaurant."},
				{"NATURE", "Scenic Viewpoint", "Enjoy panoramic views of the city and surrounding landscape."},
				{"SHOPPING", "Local Market", "Browse handcrafted souvenirs and local specialties."},
				{"CULTURE", "Museum Visit", "Learn about local history and culture at the main museum."},
				{"NIGHTLIFE", "Evening Entertainment", "Experience the local nightlife scene and live performances."},
			},
			hotel: response_models.DayHotel{
				Name:    fmt.Sprintf("%s Grand Hotel", destination),
				WhyHere: "Centrally located with easy access to major attractions.",
			},
		}
	}

	const activitiesPerDay = 3

	result := &response_models.Itinerary{
		StayStrategy: &response_models.StayStrategy{
			Summary:     fmt.Sprintf("Stay at %s for the whole trip", data.hotel.Name),
			TotalHotels: 1,
			Clusters: []response_models.StayCluster{
				{Days: fmt.Sprintf("1-%d", duration), Hotel: data.hotel.Name, Area: data.hotel.Area, Reason: data.hotel.WhyHere},
			},
		},
		Tips: []string{
			fmt.Sprintf("Best time to visit %s may vary by season", destination),
			"Book popular attractions 2-3 weeks in advance",
			"Download offline maps for navigation",
		},
	}

	for day := 1; day <= duration; day++ {
		hotel := data.hotel
		itineraryDay := response_models.ItineraryDay{
			Day:        day,
			Title:      demoDayTitles[(day-1)%len(demoDayTitles)],
			Date:       fmt.Sprintf("Day %d", day),
			Area:       hotel.Area,
			Hotel:      &hotel,
			Activities: []response_models.Activity{},
		}

		for i := 0; i < activitiesPerDay; i++ {
			source := data.activities[((day-1)*activitiesPerDay+i)%len(data.activities)]
			slot := demoTimes[i%len(demoTimes)]

			activity := response_models.Activity{
				Time:        slot[0],
				EndTime:     slot[1],
				Category:    source.category,
				Title:       source.title,
				Description: source.desc,
			}
			finalizeActivity(&activity, day-1, i)
			itineraryDay.Activities = append(itineraryDay.Activities, activity)
		}

		result.Days = append(result.Days, itineraryDay)
	}

	return result
}
