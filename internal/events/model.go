package events

// Record is one portal event. Like directory records, events are append-only
// with id = count+1.
type Record struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Attendees   int    `json:"attendees"`
}

// CreateRequest is the create-event form payload.
type CreateRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
}

// SampleRecords is the events seed.
func SampleRecords() []Record {
	return []Record{
		{
			ID:          1,
			Title:       "Annual Alumni Meet 2024",
			Date:        "2024-12-25",
			Time:        "18:00",
			Location:    "Main Auditorium",
			Description: "Annual gathering of all alumni",
			Attendees:   120,
			Type:        "networking",
		},
		{
			ID:          2,
			Title:       "Tech Industry Panel Discussion",
			Date:        "2025-01-15",
			Time:        "16:00",
			Location:    "Online Event",
			Description: "Discussion on latest tech trends",
			Attendees:   85,
			Type:        "professional",
		},
	}
}
