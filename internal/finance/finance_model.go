package finance

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record statuses. Deletion is a soft status flip; deleted records stay in
// the collection and are excluded from listings and totals.
const (
	StatusActive  = "active"
	StatusDeleted = "deleted"
)

// Record is a document in ams-finance. Amounts are stored in INR.
type Record struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TransactionID string             `bson:"transactionId" json:"transactionId"`
	Description   string             `bson:"description" json:"description"`
	Amount        float64            `bson:"amount" json:"amount"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Type          string             `bson:"type" json:"type"`
	Date          string             `bson:"date" json:"date"`
	AcademyID     string             `bson:"academyId" json:"academyId"`
	Status        string             `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type CreateRecordRequest struct {
	Description string  `json:"description" binding:"required,max=300"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Quantity    int     `json:"quantity" binding:"omitempty,gte=1"`
	Type        string  `json:"type" binding:"required,oneof=income expense"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
}

// Summary is the aggregate ledger view. INR totals always carry the
// invariant balance = totalIncome - totalExpense; converted figures are the
// same numbers under a linear exchange rate.
type Summary struct {
	Currency     string  `json:"currency"`
	TotalIncome  float64 `json:"totalIncome"`
	TotalExpense float64 `json:"totalExpense"`
	Balance      float64 `json:"balance"`
	Converted    *struct {
		Currency     string  `json:"currency"`
		Rate         float64 `json:"rate"`
		TotalIncome  float64 `json:"totalIncome"`
		TotalExpense float64 `json:"totalExpense"`
		Balance      float64 `json:"balance"`
	} `json:"converted,omitempty"`
}
