package models

import "time"

// CurvePoint represents a single row of a par-yield curve file.
//
// Column order:
//  1. CurveDate
//  2. Tenor (years)
//  3. ParYield (decimal)
//  4. Source
type CurvePoint struct {
	CurveDate time.Time
	Tenor     int
	ParYield  float64
	Source    string
}

// Curve is a stored par-yield curve together with the spot and one-year
// forward curves bootstrapped from it.
//
// swagger:model Curve
type Curve struct {
	Date     time.Time `json:"date"`
	Tenors   []int     `json:"tenors"`
	Par      []float64 `json:"par"`
	Spot     []float64 `json:"spot"`
	Forwards []float64 `json:"forwards"`
}

// TenorStats summarises the history of one tenor's par yield.
//
// swagger:model TenorStats
type TenorStats struct {
	Tenor  int       `json:"tenor" example:"5"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Count  int       `json:"count" example:"250"`
	Mean   float64   `json:"mean" example:"0.0312"`
	StdDev float64   `json:"std_dev" example:"0.0021"`
	Min    float64   `json:"min" example:"0.0281"`
	Max    float64   `json:"max" example:"0.0355"`
}
