package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/amrkal/tennis-reservation/internal/core/domain"
)

const reservationsCollection = "reservations"

// ReservationRepository persists reservations in MongoDB.
type ReservationRepository struct {
	coll *mongo.Collection
}

func NewReservationRepository(db *mongo.Database) *ReservationRepository {
	return &ReservationRepository{coll: db.Collection(reservationsCollection)}
}

type reservationDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	FirstName string             `bson:"firstName"`
	LastName  string             `bson:"lastName"`
	Phone     string             `bson:"phone"`
	Email     string             `bson:"email"`
	Date      string             `bson:"date"`
	StartTime string             `bson:"startTime"`
	EndTime   string             `bson:"endTime"`
}

func (d reservationDoc) toDomain() domain.Reservation {
	return domain.Reservation{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Phone:     d.Phone,
		Email:     d.Email,
		Date:      d.Date,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
}

// Create inserts a reservation and returns the assigned identifier as a hex
// string. No uniqueness or slot-overlap constraint is enforced.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := reservationDoc{
		FirstName: res.FirstName,
		LastName:  res.LastName,
		Phone:     res.Phone,
		Email:     res.Email,
		Date:      res.Date,
		StartTime: res.StartTime,
		EndTime:   res.EndTime,
	}

	result, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert reservation: %w", err)
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert reservation: unexpected id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns every stored reservation in natural (insertion) order.
func (r *ReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer cursor.Close(ctx)

	reservations := make([]domain.Reservation, 0)
	for cursor.Next(ctx) {
		var doc reservationDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode reservation: %w", err)
		}
		reservations = append(reservations, doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}
