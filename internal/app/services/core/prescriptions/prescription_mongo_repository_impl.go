package prescriptions

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

type PrescriptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewPrescriptionMongoRepository(db *mongo.Client, dbName string) contracts.PrescriptionRepository {
	return &PrescriptionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPrescriptions),
	}
}

func (r *PrescriptionMongoRepository) CreatePrescription(ctx context.Context, prescription *models.Prescription) (string, error) {
	result, err := r.Collection.InsertOne(ctx, prescription)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PrescriptionMongoRepository) FindAll(ctx context.Context) ([]models.Prescription, error) {
	return r.findSorted(ctx, bson.M{})
}

func (r *PrescriptionMongoRepository) FindByID(ctx context.Context, prescriptionID string) (*models.Prescription, error) {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var prescription models.Prescription
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&prescription)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &prescription, nil
}

func (r *PrescriptionMongoRepository) FindByPatient(ctx context.Context, patientID string) ([]models.Prescription, error) {
	return r.findSorted(ctx, bson.M{"patientId": patientID})
}

func (r *PrescriptionMongoRepository) FindByDoctor(ctx context.Context, doctorID string) ([]models.Prescription, error) {
	return r.findSorted(ctx, bson.M{"doctorId": doctorID})
}

func (r *PrescriptionMongoRepository) findSorted(ctx context.Context, filter bson.M) ([]models.Prescription, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return prescriptions, nil
}

func (r *PrescriptionMongoRepository) UpdatePrescription(ctx context.Context, prescription *models.Prescription) error {
	objectID, err := primitive.ObjectIDFromHex(prescription.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"medicationId":     prescription.MedicationID,
		"quantity":         prescription.Quantity,
		"directions":       prescription.Directions,
		"attachmentObject": prescription.AttachmentObject,
		"updatedAt":        prescription.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PrescriptionMongoRepository) DeletePrescription(ctx context.Context, prescriptionID string) error {
	objectID, err := primitive.ObjectIDFromHex(prescriptionID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
