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

const feedbackCollection = "user_feedback"

type FeedbackRepository struct {
	feedback *mongo.Collection
	users    *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{
		feedback: db.Collection(feedbackCollection),
		users:    db.Collection(userCollection),
	}
}

type mongoFeedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Rating    int                `bson:"rating"`
	Comment   string             `bson:"comment"`
	CreatedAt int64              `bson:"created_at"`
}

func (r *FeedbackRepository) Insert(ctx context.Context, f *domain.Feedback) (*domain.Feedback, error) {
	doc := mongoFeedback{
		UserID:    f.UserID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		CreatedAt: f.CreatedAt.Unix(),
	}

	res, err := r.feedback.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert feedback: %w", err)
	}

	created := *f
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// Recent returns the newest entries with author names resolved from the users
// collection in a second query.
func (r *FeedbackRepository) Recent(ctx context.Context, limit int) ([]domain.Feedback, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.feedback.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoFeedback
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode feedback: %w", err)
	}

	names, err := r.userNames(ctx, docs)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Feedback, 0, len(docs))
	for _, mf := range docs {
		out = append(out, domain.Feedback{
			ID:        mf.ID.Hex(),
			UserID:    mf.UserID,
			UserName:  names[mf.UserID],
			Rating:    mf.Rating,
			Comment:   mf.Comment,
			CreatedAt: unixToTime(mf.CreatedAt),
		})
	}
	return out, nil
}

func (r *FeedbackRepository) userNames(ctx context.Context, docs []mongoFeedback) (map[string]string, error) {
	ids := make([]primitive.ObjectID, 0, len(docs))
	for _, mf := range docs {
		if oid, err := primitive.ObjectIDFromHex(mf.UserID); err == nil {
			ids = append(ids, oid)
		}
	}
	if len(ids) == 0 {
		return map[string]string{}, nil
	}

	cur, err := r.users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("resolve feedback authors: %w", err)
	}
	defer cur.Close(ctx)

	names := make(map[string]string, len(ids))
	for cur.Next(ctx) {
		var mu mongoUser
		if err := cur.Decode(&mu); err != nil {
			return nil, fmt.Errorf("decode feedback author: %w", err)
		}
		names[mu.ID.Hex()] = mu.Name
	}
	return names, cur.Err()
}
