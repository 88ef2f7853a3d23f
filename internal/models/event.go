package models

// Event is one catalog entry. Values are treated as immutable once loaded.
type Event struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Genre       string  `json:"genre"`
	TicketPrice float64 `json:"ticketPrice"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	FoodType    string  `json:"foodType"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
	EventType   string  `json:"eventType,omitempty"`
	CrowdLevel  string  `json:"crowdLevel,omitempty"`
}

// EventSummary is the reduced event view attached to a recommendation.
type EventSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Date  string `json:"date"`
	Genre string `json:"genre"`
}

func (e Event) Summary() EventSummary {
	return EventSummary{ID: e.ID, Name: e.Name, Date: e.Date, Genre: e.Genre}
}

type CoordinatePoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// UserPreferences are supplied per request and never persisted.
type UserPreferences struct {
	Budget          float64  `json:"budget"`
	PreferredGenres []string `json:"preferred_genres" validate:"dive,required"`
	Latitude        float64  `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude       float64  `json:"longitude" validate:"gte=-180,lte=180"`
	FoodPreference  string   `json:"food_preference"`
	AvoidCrowds     bool     `json:"avoid_crowds"`
}
