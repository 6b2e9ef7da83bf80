package dto

// Defaults applied when a request omits frequency or face value.
const (
	DefaultFrequency = 1
	DefaultFaceValue = 100.0
)

func withDefaults(frequency *int, face *float64) {
	if *frequency == 0 {
		*frequency = DefaultFrequency
	}
	if *face == 0 {
		*face = DefaultFaceValue
	}
}

// ForwardRateRequest is the body of POST /api/v1/bonds/forward-rate.
type ForwardRateRequest struct {
	// Rate is the spot rate over Periods.
	Rate    float64 `json:"rate" example:"0.044"`
	Periods int     `json:"periods" example:"3"`
	// BaseRate is the spot rate over BasePeriods.
	BaseRate    float64 `json:"base_rate" example:"0.0415"`
	BasePeriods int     `json:"base_periods" example:"2"`
}

// PriceRequest is the body of POST /api/v1/bonds/price.
type PriceRequest struct {
	Rates      []float64 `json:"rates" binding:"required" example:"0.08,0.0875"`
	CouponRate float64   `json:"coupon_rate" example:"0.06"`
	Frequency  int       `json:"frequency" example:"1"`
	FaceValue  float64   `json:"face_value" example:"100"`
}

// Normalize fills in default frequency and face value.
func (r *PriceRequest) Normalize() { withDefaults(&r.Frequency, &r.FaceValue) }

// ParYieldRequest is the body of POST /api/v1/bonds/par-yield.
type ParYieldRequest struct {
	Rates     []float64 `json:"rates" binding:"required" example:"0.015,0.0175,0.01875"`
	Frequency int       `json:"frequency" example:"1"`
	FaceValue float64   `json:"face_value" example:"100"`
}

// Normalize fills in default frequency and face value.
func (r *ParYieldRequest) Normalize() { withDefaults(&r.Frequency, &r.FaceValue) }

// SpotRateRequest is the body of POST /api/v1/bonds/spot-rate.
type SpotRateRequest struct {
	KnownRates []float64 `json:"known_rates" example:"0.015,0.0175"`
	CouponRate float64   `json:"coupon_rate" example:"0.016"`
	Frequency  int       `json:"frequency" example:"1"`
	FaceValue  float64   `json:"face_value" example:"100"`
}

// Normalize fills in default frequency and face value.
func (r *SpotRateRequest) Normalize() { withDefaults(&r.Frequency, &r.FaceValue) }

// ZeroPriceRequest is the body of POST /api/v1/bonds/zero-price.
type ZeroPriceRequest struct {
	Rate      float64 `json:"rate" example:"0.0667"`
	Years     int     `json:"years" example:"6"`
	Frequency int     `json:"frequency" example:"2"`
	FaceValue float64 `json:"face_value" example:"100"`
}

// Normalize fills in default frequency and face value.
func (r *ZeroPriceRequest) Normalize() { withDefaults(&r.Frequency, &r.FaceValue) }

// YTMRequest is the body of POST /api/v1/bonds/ytm.
type YTMRequest struct {
	CouponRate    float64 `json:"coupon_rate" example:"0.08"`
	Years         int     `json:"years" binding:"required" example:"7"`
	Frequency     int     `json:"frequency" example:"1"`
	PurchasePrice float64 `json:"purchase_price" binding:"required" example:"101300"`
	FaceValue     float64 `json:"face_value" example:"100000"`
}

// Normalize fills in default frequency and face value.
func (r *YTMRequest) Normalize() { withDefaults(&r.Frequency, &r.FaceValue) }

// HorizonReturnRequest is the body of POST /api/v1/bonds/horizon-return.
type HorizonReturnRequest struct {
	Rates            []float64 `json:"rates" binding:"required" example:"0.04,0.03,0.025,0.02"`
	RatesAreForwards bool      `json:"rates_are_forwards" example:"false"`
	Horizon          int       `json:"horizon" binding:"required" example:"3"`
	CouponRate       float64   `json:"coupon_rate" example:"0.03"`
	FaceValue        float64   `json:"face_value" example:"100000"`
	PurchasePrice    float64   `json:"purchase_price" example:"101400"`
}

// Normalize defaults face value to 100 and purchase price to face.
func (r *HorizonReturnRequest) Normalize() {
	if r.FaceValue == 0 {
		r.FaceValue = DefaultFaceValue
	}
	if r.PurchasePrice == 0 {
		r.PurchasePrice = r.FaceValue
	}
}

// CalculationResponse is returned by every single-value bond endpoint.
type CalculationResponse struct {
	Kind       string  `json:"kind" example:"ytm"`
	Value      float64 `json:"value" example:"0.077516"`
	Iterations int     `json:"iterations,omitempty" example:"20"`
	Residual   float64 `json:"residual,omitempty" example:"0.00012"`
}

// HorizonReturnResponse is returned by POST /api/v1/bonds/horizon-return.
type HorizonReturnResponse struct {
	Return            float64   `json:"return" example:"0.0265"`
	Forwards          []float64 `json:"forwards"`
	ReinvestedCoupons float64   `json:"reinvested_coupons" example:"9123.4"`
	SalePrice         float64   `json:"sale_price" example:"100981.9"`
}
