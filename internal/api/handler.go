package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bondcalc/internal/middleware"
	"github.com/guttosm/bondcalc/internal/service"
)

// BondHandler provides HTTP handlers for the bond-math endpoints.
//
// Responsibilities:
//   - Bind and validate JSON request bodies
//   - Delegate to the BondService with the request context
//   - Attach service errors with c.Error so middleware.ErrorHandler maps them
type BondHandler struct {
	svc service.BondService
}

// NewBondHandler constructs a BondHandler.
func NewBondHandler(svc service.BondService) *BondHandler {
	return &BondHandler{svc: svc}
}

// serveJSON binds the body into Req, runs call and writes its result as 200.
func serveJSON[Req any, Resp any](c *gin.Context, call func(context.Context, Req) (Resp, error)) {
	var req Req
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	out, err := call(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// ForwardRate godoc
// @Summary      Implied forward rate
// @Description  Rate between BasePeriods and Periods implied by two spot rates
// @Tags         bonds
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ForwardRateRequest  true  "Spot rates and periods"
// @Success      200      {object}  dto.CalculationResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/bonds/forward-rate [post]
func (h *BondHandler) ForwardRate(c *gin.Context) {
	serveJSON(c, h.svc.ForwardRate)
}

// Price godoc
// @Summary      Bond price
// @Description  Present value of a level-coupon bond, each cashflow discounted at its own rate
// @Tags         bonds
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PriceRequest  true  "Rate schedule and bond terms"
// @Success      200      {object}  dto.CalculationResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/bonds/price [post]
func (h *BondHandler) Price(c *gin.Context) {
	serveJSON(c, h.svc.Price)
}

// ParYield godoc
// @Summary      Par yield
// @Description  Coupon rate at which the bond prices at face value
// @Tags         bonds
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ParYieldRequest  true  "Spot curve"
// @Success      200      {object}  dto.CalculationResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422      {object}  dto.ErrorResponse  "Not bracketed or did not converge"
// @Router       /api/v1/bonds/par-yield [post]
func (h *BondHandler) ParYield(c *gin.Context) {
	serveJSON(c, h.svc.ParYield)
}

// SpotRate godoc
// @Summary      Next spot rate
// @Description  Strips the spot rate for the next maturity from a par bond and known shorter spots
// @Tags         bonds
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SpotRateRequest  true  "Known spots and coupon"
// @Success      200      {object}  dto.CalculationResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422      {object}  dto.ErrorResponse  "Not bracketed or did not converge"
// @Router       /api/v1/bonds/spot-rate [post]
func (h *BondHandler) SpotRate(c *gin.Context) {
	serveJSON(c, h.svc.SpotRate)
}

// ZeroPrice godoc
// @Summary      Zero-coupon price
// @Tags         bonds
// @Accept       json
// @Produce      json
// @Param        request  body      dto.ZeroPriceRequest  true  "Rate, years and compounding"
// @Success      200      {object}  dto.CalculationResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/bonds/zero-price [post]
func (h *BondHandler) ZeroPrice(c *gin.Context) {
	serveJSON(c, h.svc.ZeroPrice)
}

// YieldToMaturity godoc
// @Summary      Yield to maturity
// @Description  Flat rate that discounts the bond's cashflows to the purchase price
// @Tags         bonds
// @Accept       json
// @Produce      json
// @Param        request  body      dto.YTMRequest  true  "Bond terms and purchase price"
// @Success      200      {object}  dto.CalculationResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Failure      422      {object}  dto.ErrorResponse  "Not bracketed or did not converge"
// @Router       /api/v1/bonds/ytm [post]
func (h *BondHandler) YieldToMaturity(c *gin.Context) {
	serveJSON(c, h.svc.YieldToMaturity)
}

// HorizonReturn godoc
// @Summary      Horizon return
// @Description  Annualised return of a bond sold at the horizon with coupons reinvested at forward rates
// @Tags         bonds
// @Accept       json
// @Produce      json
// @Param        request  body      dto.HorizonReturnRequest  true  "Rates, horizon and bond terms"
// @Success      200      {object}  dto.HorizonReturnResponse
// @Failure      400      {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/bonds/horizon-return [post]
func (h *BondHandler) HorizonReturn(c *gin.Context) {
	serveJSON(c, h.svc.HorizonReturn)
}
