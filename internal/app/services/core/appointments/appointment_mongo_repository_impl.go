package appointments

import (
	"context"

	"clinica-service/internal/app/contracts"
	"clinica-service/internal/app/models"
	"clinica-service/internal/pkg/constvars"
	"clinica-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes creates the unique (doctorId, date, startTime) index. Two
// concurrent inserts for the same slot race down to this index; the loser
// surfaces as a duplicate key error.
func (r *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "doctorId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "startTime", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if isSlotTaken(err) {
			return "", exceptions.ErrSlotTaken(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var appointment models.Appointment
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (r *AppointmentMongoRepository) FindByDoctorAndDate(ctx context.Context, doctorID, date string) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{"doctorId": doctorID, "date": date})
}

func (r *AppointmentMongoRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{"doctorId": doctorID})
}

func (r *AppointmentMongoRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{"patientId": patientID})
}

func (r *AppointmentMongoRepository) FindByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	return r.findSorted(ctx, bson.M{"date": date})
}

func (r *AppointmentMongoRepository) findSorted(ctx context.Context, filter bson.M) ([]models.Appointment, error) {
	sort := options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "startTime", Value: 1},
	})
	cursor, err := r.Collection.Find(ctx, filter, sort)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (r *AppointmentMongoRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"date":      appointment.Date,
		"startTime": appointment.StartTime,
		"endTime":   appointment.EndTime,
		"notes":     appointment.Notes,
		"updatedAt": appointment.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if isSlotTaken(err) {
			return exceptions.ErrSlotTaken(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *AppointmentMongoRepository) DeleteAppointment(ctx context.Context, appointmentID string) error {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

// isSlotTaken maps a violation of the unique (doctorId, date, startTime)
// index onto the slot-conflict error.
func isSlotTaken(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
