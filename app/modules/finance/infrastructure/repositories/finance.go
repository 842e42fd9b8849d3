package financedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	financedomain "github.com/Black-And-White-Club/nascon/app/modules/finance/domain"
	"github.com/Black-And-White-Club/nascon/app/shared/database"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new finance repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

// inRange restricts column to rng. Open bounds add nothing.
func inRange(q *bun.SelectQuery, column string, rng financedomain.Range) *bun.SelectQuery {
	if !rng.From.IsZero() {
		q = q.Where(column+" >= ?", rng.From)
	}
	if !rng.To.IsZero() {
		q = q.Where(column+" < ?", rng.To)
	}
	return q
}

func classifyWrite(op string, err error) error {
	switch {
	case database.IsForeignKeyViolation(err):
		return ErrUnknownReference
	case database.IsCheckViolation(err):
		return ErrInvalidAmount
	}
	return fmt.Errorf("financedb.%s: %w", op, err)
}

func (r *Impl) CreatePayment(ctx context.Context, db bun.IDB, payment *Payment) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(payment).
		ExcludeColumn("payment_id", "payment_date").
		Returning("payment_id, payment_date").
		Exec(ctx)
	if err != nil {
		return classifyWrite("CreatePayment", err)
	}
	return nil
}

func (r *Impl) ListPaymentsByUser(ctx context.Context, db bun.IDB, userID int64) ([]UserPayment, error) {
	db = r.resolveDB(db)
	payments := make([]UserPayment, 0)
	err := db.NewSelect().
		Model(&payments).
		ColumnExpr("p.*").
		ColumnExpr("e.event_name, s.sponsorship_type").
		Join("LEFT JOIN events AS e ON e.event_id = p.event_id").
		Join("LEFT JOIN sponsorships AS s ON s.sponsorship_id = p.sponsorship_id").
		Where("p.user_id = ?", userID).
		OrderExpr("p.payment_date DESC, p.payment_id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("financedb.ListPaymentsByUser: %w", err)
	}
	return payments, nil
}

func (r *Impl) CreateSponsorship(ctx context.Context, db bun.IDB, sponsorship *Sponsorship) error {
	db = r.resolveDB(db)
	_, err := db.NewInsert().
		Model(sponsorship).
		ExcludeColumn("sponsorship_id", "payment_date").
		Returning("sponsorship_id, payment_date").
		Exec(ctx)
	if err != nil {
		return classifyWrite("CreateSponsorship", err)
	}
	return nil
}

func (r *Impl) GetSponsorship(ctx context.Context, db bun.IDB, sponsorshipID int64) (*Sponsorship, error) {
	db = r.resolveDB(db)
	sponsorship := new(Sponsorship)
	err := db.NewSelect().
		Model(sponsorship).
		Where("s.sponsorship_id = ?", sponsorshipID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("financedb.GetSponsorship: %w", err)
	}
	return sponsorship, nil
}

func (r *Impl) ListContracts(ctx context.Context, db bun.IDB, filter ContractFilter) ([]Contract, error) {
	db = r.resolveDB(db)
	contracts := make([]Contract, 0)
	q := db.NewSelect().
		Model(&contracts).
		ColumnExpr("s.*").
		ColumnExpr("u.full_name AS sponsor_name, u.email AS sponsor_email").
		Join("JOIN users AS u ON u.user_id = s.sponsor_id")
	if filter.SponsorID != nil {
		q = q.Where("s.sponsor_id = ?", *filter.SponsorID)
	}
	q = inRange(q, "s.payment_date", filter.Range)
	err := q.OrderExpr("s.payment_date DESC, s.sponsorship_id DESC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("financedb.ListContracts: %w", err)
	}
	return contracts, nil
}

func (r *Impl) UpdateBranding(ctx context.Context, db bun.IDB, sponsorshipID int64, branding string) (*Sponsorship, error) {
	db = r.resolveDB(db)
	sponsorship := &Sponsorship{SponsorshipID: sponsorshipID, BrandingOpportunities: &branding}
	res, err := db.NewUpdate().
		Model(sponsorship).
		Column("branding_opportunities").
		WherePK().
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("financedb.UpdateBranding: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, ErrNotFound
	}
	return sponsorship, nil
}

func (r *Impl) SponsorshipStats(ctx context.Context, db bun.IDB) ([]TypeStat, error) {
	db = r.resolveDB(db)
	stats := make([]TypeStat, 0)
	err := db.NewSelect().
		Model((*Sponsorship)(nil)).
		ColumnExpr("s.sponsorship_type").
		ColumnExpr("COUNT(*) AS count").
		ColumnExpr("COALESCE(SUM(s.amount_paid), 0) AS amount").
		GroupExpr("s.sponsorship_type").
		OrderExpr("amount DESC, s.sponsorship_type ASC").
		Scan(ctx, &stats)
	if err != nil {
		return nil, fmt.Errorf("financedb.SponsorshipStats: %w", err)
	}
	return stats, nil
}

// Totals sums registration payments and sponsorship contracts. Payments made
// against a sponsorship are not counted again as revenue.
func (r *Impl) Totals(ctx context.Context, db bun.IDB, rng financedomain.Range) (Totals, error) {
	db = r.resolveDB(db)
	var totals Totals

	var payments struct {
		Fees  float64 `bun:"fees"`
		Count int     `bun:"count"`
	}
	q := db.NewSelect().
		Model((*Payment)(nil)).
		ColumnExpr("COALESCE(SUM(p.amount_paid) FILTER (WHERE p.event_id IS NOT NULL), 0) AS fees").
		ColumnExpr("COUNT(*) AS count")
	if err := inRange(q, "p.payment_date", rng).Scan(ctx, &payments); err != nil {
		return totals, fmt.Errorf("financedb.Totals: %w", err)
	}

	var sponsorships float64
	q = db.NewSelect().
		Model((*Sponsorship)(nil)).
		ColumnExpr("COALESCE(SUM(s.amount_paid), 0)")
	if err := inRange(q, "s.payment_date", rng).Scan(ctx, &sponsorships); err != nil {
		return totals, fmt.Errorf("financedb.Totals: %w", err)
	}

	totals.RegistrationFees = payments.Fees
	totals.Payments = payments.Count
	totals.Sponsorships = sponsorships
	return totals, nil
}

func (r *Impl) EventRevenue(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]EventRevenue, error) {
	db = r.resolveDB(db)
	rows := make([]EventRevenue, 0)
	q := db.NewSelect().
		TableExpr("events AS e").
		ColumnExpr("e.event_id, e.event_name, e.event_type, e.registration_fee").
		ColumnExpr("(SELECT COUNT(*) FROM registrations AS r WHERE r.event_id = e.event_id) AS participant_count").
		ColumnExpr("COALESCE(SUM(p.amount_paid), 0) AS total_revenue").
		Join("LEFT JOIN payments AS p").
		JoinOn("p.event_id = e.event_id")
	if !rng.From.IsZero() {
		q = q.JoinOn("p.payment_date >= ?", rng.From)
	}
	if !rng.To.IsZero() {
		q = q.JoinOn("p.payment_date < ?", rng.To)
	}
	err := q.
		GroupExpr("e.event_id").
		OrderExpr("total_revenue DESC, e.event_id ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("financedb.EventRevenue: %w", err)
	}
	return rows, nil
}

func (r *Impl) PaymentLines(ctx context.Context, db bun.IDB, rng financedomain.Range) ([]PaymentLine, error) {
	db = r.resolveDB(db)
	rows := make([]PaymentLine, 0)
	q := db.NewSelect().
		Model((*Payment)(nil)).
		ColumnExpr("p.payment_id, u.full_name AS user_name").
		ColumnExpr("CASE WHEN p.event_id IS NOT NULL THEN 'Registration' ELSE 'Sponsorship' END AS payment_type").
		ColumnExpr("e.event_name, s.sponsorship_type").
		ColumnExpr("p.amount_paid, p.payment_method, p.payment_date").
		Join("JOIN users AS u ON u.user_id = p.user_id").
		Join("LEFT JOIN events AS e ON e.event_id = p.event_id").
		Join("LEFT JOIN sponsorships AS s ON s.sponsorship_id = p.sponsorship_id")
	err := inRange(q, "p.payment_date", rng).
		OrderExpr("p.payment_date DESC, p.payment_id DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("financedb.PaymentLines: %w", err)
	}
	return rows, nil
}
