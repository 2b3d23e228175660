package medications

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

type MedicationMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicationMongoRepository(db *mongo.Client, dbName string) contracts.MedicationRepository {
	return &MedicationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedications),
	}
}

func (r *MedicationMongoRepository) CreateMedication(ctx context.Context, medication *models.Medication) (string, error) {
	result, err := r.Collection.InsertOne(ctx, medication)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *MedicationMongoRepository) FindAll(ctx context.Context) ([]models.Medication, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medications []models.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, nil
}

func (r *MedicationMongoRepository) FindByID(ctx context.Context, medicationID string) (*models.Medication, error) {
	objectID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var medication models.Medication
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&medication)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medication, nil
}

func (r *MedicationMongoRepository) UpdateMedication(ctx context.Context, medication *models.Medication) error {
	objectID, err := primitive.ObjectIDFromHex(medication.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"name":      medication.Name,
		"unit":      medication.Unit,
		"stock":     medication.Stock,
		"updatedAt": medication.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *MedicationMongoRepository) DeleteMedication(ctx context.Context, medicationID string) error {
	objectID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
