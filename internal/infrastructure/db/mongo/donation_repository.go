package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/givebridge/donation-platform/internal/core/domain"
)

const (
	donationCollection = "donations"
	monthlyCollection  = "monthly_donations"
)

type DonationRepository struct {
	donations *mongo.Collection
	monthly   *mongo.Collection
}

func NewDonationRepository(db *mongo.Database) *DonationRepository {
	return &DonationRepository{
		donations: db.Collection(donationCollection),
		monthly:   db.Collection(monthlyCollection),
	}
}

type mongoDonation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	RecipientID    string             `bson:"recipient_id"`
	Amount         float64            `bson:"amount"`
	Currency       string             `bson:"currency,omitempty"`
	Type           string             `bson:"type"`
	Status         string             `bson:"status"`
	Location       string             `bson:"location,omitempty"`
	IdempotencyKey string             `bson:"idempotency_key,omitempty"`
	CreatedAt      int64              `bson:"created_at"`
}

type mongoMonthly struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"user_id"`
	Amount        float64            `bson:"amount"`
	Currency      string             `bson:"currency"`
	RecipientType string             `bson:"recipient_type"`
	IsActive      bool               `bson:"is_active"`
	NextPayment   int64              `bson:"next_payment"`
	CreatedAt     int64              `bson:"created_at"`
}

func (r *DonationRepository) Insert(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	doc := mongoDonation{
		UserID:         d.UserID,
		RecipientID:    d.RecipientID,
		Amount:         d.Amount,
		Currency:       d.Currency,
		Type:           string(d.Type),
		Status:         string(d.Status),
		Location:       d.Location,
		IdempotencyKey: d.IdempotencyKey,
		CreatedAt:      d.CreatedAt.Unix(),
	}

	res, err := r.donations.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}

	created := *d
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *DonationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.donations.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Donation
	for cur.Next(ctx) {
		var md mongoDonation
		if err := cur.Decode(&md); err != nil {
			return nil, fmt.Errorf("decode donation: %w", err)
		}
		out = append(out, domain.Donation{
			ID:          md.ID.Hex(),
			UserID:      md.UserID,
			RecipientID: md.RecipientID,
			Amount:      md.Amount,
			Currency:    md.Currency,
			Type:        domain.DonationType(md.Type),
			Status:      domain.DonationStatus(md.Status),
			Location:    md.Location,
			CreatedAt:   unixToTime(md.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate donations: %w", err)
	}
	return out, nil
}

func (r *DonationRepository) InsertMonthly(ctx context.Context, m *domain.MonthlyDonation) (*domain.MonthlyDonation, error) {
	doc := mongoMonthly{
		UserID:        m.UserID,
		Amount:        m.Amount,
		Currency:      m.Currency,
		RecipientType: m.RecipientType,
		IsActive:      m.IsActive,
		NextPayment:   m.NextPayment.Unix(),
		CreatedAt:     m.CreatedAt.Unix(),
	}

	res, err := r.monthly.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert monthly donation: %w", err)
	}

	created := *m
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *DonationRepository) SetMonthlyActive(ctx context.Context, id, userID string, active bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDonationNotFound
	}

	res, err := r.monthly.UpdateOne(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{"is_active": active}},
	)
	if err != nil {
		return fmt.Errorf("update monthly donation: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDonationNotFound
	}
	return nil
}
