package financedb

import (
	"time"

	"github.com/uptrace/bun"
)

// Payment is money received from a user for an event or a sponsorship.
type Payment struct {
	bun.BaseModel `bun:"table:payments,alias:p"`
	PaymentID     int64     `bun:"payment_id,pk,autoincrement" json:"PaymentID"`
	UserID        int64     `bun:"user_id,notnull" json:"UserID"`
	EventID       *int64    `bun:"event_id" json:"EventID"`
	SponsorshipID *int64    `bun:"sponsorship_id" json:"SponsorshipID"`
	AmountPaid    float64   `bun:"amount_paid,notnull" json:"AmountPaid"`
	PaymentDate   time.Time `bun:"payment_date,notnull,default:current_timestamp" json:"PaymentDate"`
	PaymentMethod string    `bun:"payment_method,notnull" json:"PaymentMethod"`
}

// Sponsorship is a signed sponsorship contract.
type Sponsorship struct {
	bun.BaseModel         `bun:"table:sponsorships,alias:s"`
	SponsorshipID         int64     `bun:"sponsorship_id,pk,autoincrement" json:"SponsorshipID"`
	SponsorID             int64     `bun:"sponsor_id,notnull" json:"SponsorID"`
	SponsorshipType       string    `bun:"sponsorship_type,notnull" json:"SponsorshipType"`
	AmountPaid            float64   `bun:"amount_paid,notnull" json:"AmountPaid"`
	ContractDetails       *string   `bun:"contract_details" json:"ContractDetails"`
	BrandingOpportunities *string   `bun:"branding_opportunities" json:"BrandingOpportunities"`
	PaymentDate           time.Time `bun:"payment_date,notnull,default:current_timestamp" json:"PaymentDate"`
}

// UserPayment is a payment joined with what it paid for.
type UserPayment struct {
	Payment         `bun:",extend"`
	EventName       *string `bun:"event_name" json:"EventName"`
	SponsorshipType *string `bun:"sponsorship_type" json:"SponsorshipType"`
}

// Contract is a sponsorship joined with its sponsor.
type Contract struct {
	Sponsorship  `bun:",extend"`
	SponsorName  string `bun:"sponsor_name" json:"SponsorName"`
	SponsorEmail string `bun:"sponsor_email" json:"SponsorEmail"`
}

// TypeStat aggregates contracts of one sponsorship type.
type TypeStat struct {
	Type   string  `bun:"sponsorship_type" json:"type"`
	Count  int     `bun:"count" json:"count"`
	Amount float64 `bun:"amount" json:"amount"`
}

// Totals are the headline finance figures.
type Totals struct {
	RegistrationFees float64
	Sponsorships     float64
	Payments         int
}

// EventRevenue is the per-event line of the events report.
type EventRevenue struct {
	EventID          int64    `bun:"event_id" json:"EventID"`
	EventName        string   `bun:"event_name" json:"EventName"`
	EventType        string   `bun:"event_type" json:"EventType"`
	RegistrationFee  *float64 `bun:"registration_fee" json:"RegistrationFee"`
	ParticipantCount int      `bun:"participant_count" json:"ParticipantCount"`
	TotalRevenue     float64  `bun:"total_revenue" json:"TotalRevenue"`
}

// PaymentLine is one row of the payments report.
type PaymentLine struct {
	PaymentID       int64     `bun:"payment_id" json:"PaymentID"`
	UserName        string    `bun:"user_name" json:"UserName"`
	PaymentType     string    `bun:"payment_type" json:"PaymentType"`
	EventName       *string   `bun:"event_name" json:"EventName"`
	SponsorshipType *string   `bun:"sponsorship_type" json:"SponsorshipType"`
	AmountPaid      float64   `bun:"amount_paid" json:"AmountPaid"`
	PaymentMethod   string    `bun:"payment_method" json:"PaymentMethod"`
	PaymentDate     time.Time `bun:"payment_date" json:"PaymentDate"`
}
