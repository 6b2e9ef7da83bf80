package dto

// MissingDatesResponse lists business days in [start, end] without a stored curve.
type MissingDatesResponse struct {
	Start string   `json:"start" example:"2024-05-01"`
	End   string   `json:"end" example:"2024-05-31"`
	Count int      `json:"count" example:"2"`
	Dates []string `json:"dates" example:"2024-05-14,2024-05-15"`
}
