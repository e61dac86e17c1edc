package finance

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sahilparmar-7/ams/internal/common"
	"github.com/sahilparmar-7/ams/pkg/responses"
	"github.com/sahilparmar-7/ams/pkg/stats"
	"github.com/sahilparmar-7/ams/pkg/validator"
	"github.com/sahilparmar-7/ams/utils"
)

// FinanceController handles ledger requests.
type FinanceController struct {
	repo  FinanceRepository
	rates *RateProvider
}

func NewFinanceController(repo FinanceRepository, rates *RateProvider) *FinanceController {
	return &FinanceController{repo: repo, rates: rates}
}

// CreateRecord godoc
// @Summary Record a financial transaction
// @Tags Finance
// @Param request body CreateRecordRequest true "Transaction payload"
// @Success 201 {object} responses.SuccessResponse
// @Router /finances [post]
func (fc *FinanceController) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "errors": validator.ParseError(err)})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	rec := &Record{
		TransactionID: "TXN-" + utils.GenerateRandomToken(12),
		Description:   req.Description,
		Amount:        req.Amount,
		Quantity:      quantity,
		Type:          req.Type,
		Date:          req.Date,
		AcademyID:     common.GetAcademyIDFromContext(c),
		Status:        StatusActive,
		CreatedAt:     time.Now(),
	}
	if err := fc.repo.Create(c.Request.Context(), rec); err != nil {
		responses.InternalServerError(c, "Failed to record transaction")
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Transaction recorded", rec)
}

// ListRecords godoc
// @Summary List active financial records
// @Tags Finance
// @Success 200 {object} responses.SuccessResponse
// @Router /finances [get]
func (fc *FinanceController) ListRecords(c *gin.Context) {
	records, err := fc.repo.ListActive(c.Request.Context(), common.GetAcademyIDFromContext(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch financial records")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Records retrieved successfully", records)
}

// DeleteRecord godoc
// @Summary Soft-delete a financial record
// @Description Flips status to deleted; the document remains for audit.
// @Tags Finance
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} responses.SuccessResponse
// @Router /finances/{transaction_id} [delete]
func (fc *FinanceController) DeleteRecord(c *gin.Context) {
	err := fc.repo.SoftDelete(c.Request.Context(),
		common.GetAcademyIDFromContext(c), c.Param("transaction_id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			responses.NotFound(c, "Transaction")
			return
		}
		responses.InternalServerError(c, "Failed to delete transaction")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Transaction deleted", gin.H{"transactionId": c.Param("transaction_id")})
}

// GetSummary godoc
// @Summary Financial totals and balance
// @Description Totals are computed in INR; pass ?currency= for a converted view.
// @Tags Finance
// @Param currency query string false "Target currency (ISO 4217)"
// @Success 200 {object} responses.SuccessResponse
// @Router /finances/summary [get]
func (fc *FinanceController) GetSummary(c *gin.Context) {
	records, err := fc.repo.ListActive(c.Request.Context(), common.GetAcademyIDFromContext(c))
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch financial records")
		return
	}

	txns := make([]stats.Transaction, len(records))
	for i, r := range records {
		txns[i] = stats.Transaction{
			Amount:  r.Amount,
			Type:    r.Type,
			Deleted: r.Status == StatusDeleted,
		}
	}
	totals := stats.Totals(txns)

	summary := Summary{
		Currency:     "INR",
		TotalIncome:  totals.Income,
		TotalExpense: totals.Expense,
		Balance:      totals.Balance,
	}

	if currency := c.Query("currency"); currency != "" {
		rate, err := fc.rates.Rate(c.Request.Context(), currency)
		if err != nil {
			responses.BadRequest(c, "Currency conversion unavailable: "+err.Error())
			return
		}
		converted := &struct {
			Currency     string  `json:"currency"`
			Rate         float64 `json:"rate"`
			TotalIncome  float64 `json:"totalIncome"`
			TotalExpense float64 `json:"totalExpense"`
			Balance      float64 `json:"balance"`
		}{
			Currency:     currency,
			Rate:         rate,
			TotalIncome:  stats.Convert(totals.Income, rate),
			TotalExpense: stats.Convert(totals.Expense, rate),
			Balance:      stats.Convert(totals.Balance, rate),
		}
		summary.Converted = converted
	}

	responses.SendSuccess(c, http.StatusOK, "", summary)
}
