package models

type Page string

const (
	PageHome               Page = "HOME"
	PageEventDetails       Page = "EVENT_DETAILS"
	PageUserDashboard      Page = "USER_DASHBOARD"
	PageOrganizerDashboard Page = "ORGANIZER_DASHBOARD"
)

func (p Page) Valid() bool {
	switch p {
	case PageHome, PageEventDetails, PageUserDashboard, PageOrganizerDashboard:
		return true
	}
	return false
}
