package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type UserResponse struct {
	Username string `json:"username"`
}

type TeamRequest struct {
	TeamName string `json:"team_name"`
}

type TeamResponse struct {
	TeamName string `json:"team_name"`
}

type TeamsResponse struct {
	Teams []string `json:"teams"`
}

type ReconcileResponse struct {
	CreatedEntries []string `json:"created_entries"`
	AdoptedTeams   []string `json:"adopted_teams"`
}

type VoteRequest struct {
	TeamName string `json:"team_name"`
	Vote     int    `json:"vote"`
}

type VoteResponse struct {
	TeamName string `json:"team_name"`
	Vote     int    `json:"vote"`
	Recorded bool   `json:"recorded"`
}

type VoterResponse struct {
	Username string `json:"username"`
	Vote     int    `json:"vote"`
}

type TeamResultResponse struct {
	TeamName   string          `json:"team_name"`
	TotalVotes int             `json:"total_votes"`
	VoterCount int             `json:"voter_count"`
	Voters     []VoterResponse `json:"voters"`
	Malformed  bool            `json:"malformed,omitempty"`
}

type ResultsResponse struct {
	Results []TeamResultResponse `json:"results"`
}
