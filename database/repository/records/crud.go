package recordsRepo

import (
	"context"
	"errors"
	"time"

	"musebot/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new booking record and returns its ID.
func (r *mongoRecordRepo) Create(ctx context.Context, record models.BookingRecord) (string, error) {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	record.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID, nil
}

// GetBySessionID returns the booking record for a session, if one exists.
func (r *mongoRecordRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// DeleteBySessionID removes the booking record for a session.
func (r *mongoRecordRepo) DeleteBySessionID(ctx context.Context, sessionID string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("booking record not found")
	}
	return nil
}
