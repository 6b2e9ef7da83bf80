package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Calculation kinds recorded in the audit table.
const (
	KindForwardRate   = "forward_rate"
	KindPrice         = "price"
	KindParYield      = "par_yield"
	KindSpotRate      = "spot_rate"
	KindZeroPrice     = "zero_price"
	KindYTM           = "ytm"
	KindHorizonReturn = "horizon_return"
)

// Calculation is one audited bond-math call. Iterations is zero for
// closed-form formulas.
type Calculation struct {
	ID         uuid.UUID
	Kind       string
	Input      json.RawMessage
	Result     float64
	Iterations int
	CreatedAt  time.Time
}

// NewCalculation stamps a calculation with a fresh ID and the current time.
// Input is marshalled as JSON; an unmarshalable input is stored as null.
func NewCalculation(kind string, input any, result float64, iterations int) Calculation {
	raw, err := json.Marshal(input)
	if err != nil {
		raw = json.RawMessage("null")
	}
	return Calculation{
		ID:         uuid.New(),
		Kind:       kind,
		Input:      raw,
		Result:     result,
		Iterations: iterations,
		CreatedAt:  time.Now().UTC(),
	}
}
