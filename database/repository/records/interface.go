package recordsRepo

import (
	"context"

	"musebot/database"
	"musebot/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRecordRepository stores completed reservations. Records back the
// ticket download endpoint and are never updated after creation.
type BookingRecordRepository interface {
	Create(ctx context.Context, record models.BookingRecord) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) (*models.BookingRecord, error)
	DeleteBySessionID(ctx context.Context, sessionID string) error
}

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns a new BookingRecordRepository instance using MongoDB.
func NewMongoRecordRepo() BookingRecordRepository {
	db := database.MongoClient.Database("musebot")
	return &mongoRecordRepo{
		coll: db.Collection("booking_records"),
	}
}
