package response_models

type LoginResult struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SavedTrip struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	Budget      float64 `json:"budget"`
	Days        int     `json:"days"`
	StartDate   string  `json:"startDate"`
	EndDate     string  `json:"endDate"`
	Transport   string  `json:"transport"`
	Requirement string  `json:"requirement"`
	Child       bool    `json:"child"`
}
