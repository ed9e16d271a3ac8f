package catalog

import (
	"time"

	"github.com/Eursukkul/event-ticketing/internal/models"
)

const demoOrganizerID = "user_organizer_1"

// Default is the demo catalog. Event dates are relative to now.
func Default(now time.Time) Catalog {
	return Catalog{
		Users: []models.User{
			{ID: "user_attendee_1", Name: "Alex Johnson", Email: "alex@example.com", Role: models.RoleAttendee},
			{ID: demoOrganizerID, Name: "Tech Events Inc.", Email: "contact@techevents.com", Role: models.RoleOrganizer},
		},
		Events: []models.Event{
			{
				ID:           "evt_1",
				Title:        "React Conference 2024",
				Description:  "Join the world's leading React experts for a two-day conference full of insightful talks, hands-on workshops, and networking opportunities. Learn about the latest trends, tools, and techniques in the React ecosystem.",
				ImageURL:     "https://picsum.photos/seed/reactconf/1200/800",
				Date:         daysFrom(now, 30),
				Location:     "San Francisco, CA",
				Price:        499,
				TotalTickets: 250,
				TicketsSold:  128,
				OrganizerID:  demoOrganizerID,
			},
			{
				ID:           "evt_2",
				Title:        "Vue.js Global Summit",
				Description:  "An online summit for the global Vue.js community. Featuring core team members and industry leaders sharing their knowledge on everything from Vue 3 and Vite to Nuxt.js and state management patterns.",
				ImageURL:     "https://picsum.photos/seed/vueconf/1200/800",
				Date:         daysFrom(now, 45),
				Location:     "Online",
				Price:        99,
				TotalTickets: 1000,
				TicketsSold:  450,
				OrganizerID:  demoOrganizerID,
			},
			{
				ID:           "evt_3",
				Title:        "AI in Web Development",
				Description:  "Explore the intersection of Artificial Intelligence and modern web development. This workshop covers everything from using AI-powered coding assistants to integrating large language models into your applications.",
				ImageURL:     "https://picsum.photos/seed/aiconf/1200/800",
				Date:         daysFrom(now, 60),
				Location:     "New York, NY",
				Price:        750,
				TotalTickets: 100,
				TicketsSold:  25,
				OrganizerID:  demoOrganizerID,
			},
			{
				ID:           "evt_4",
				Title:        "Indie Music Fest",
				Description:  "A three-day outdoor festival showcasing the best up-and-coming indie bands from around the country. Enjoy great music, food trucks, and art installations in a beautiful park setting.",
				ImageURL:     "https://picsum.photos/seed/musicfest/1200/800",
				Date:         daysFrom(now, 75),
				Location:     "Austin, TX",
				Price:        150,
				TotalTickets: 5000,
				TicketsSold:  4120,
				OrganizerID:  demoOrganizerID,
			},
		},
	}
}
