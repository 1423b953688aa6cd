package search

import (
	"context"
	"fmt"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/domain/repositories"
	tsclient "github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/typesense"
)

// DoctorSearchAdapter implements doctor search using Typesense
type DoctorSearchAdapter struct {
	client *tsclient.Client
}

// Ensure DoctorSearchAdapter implements DoctorSearchRepository
var _ repositories.DoctorSearchRepository = (*DoctorSearchAdapter)(nil)

// NewDoctorSearchAdapter creates a new doctor search adapter
func NewDoctorSearchAdapter(client *tsclient.Client) *DoctorSearchAdapter {
	return &DoctorSearchAdapter{client: client}
}

// InitSchema ensures the doctors collection exists
func (a *DoctorSearchAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(tsclient.DoctorsCollection).Retrieve(ctx)
	if err == nil {
		return nil // Collection exists
	}

	schema := &api.CollectionSchema{
		Name: tsclient.DoctorsCollection,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "name", Type: "string"},
			{Name: "specialization", Type: "string", Facet: pointer.True()},
			{Name: "clinic_id", Type: "string", Optional: pointer.True()},
			{Name: "clinic_name", Type: "string", Optional: pointer.True()},
		},
	}

	_, err = a.client.Client().Collections().Create(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}

	return nil
}

// Index adds or updates a doctor document in the index
func (a *DoctorSearchAdapter) Index(ctx context.Context, doctor *entities.Doctor) error {
	document := map[string]interface{}{
		"id":             doctor.ID,
		"name":           doctor.Name,
		"specialization": doctor.Specialization,
		"clinic_id":      doctor.ClinicID,
		"clinic_name":    doctor.ClinicName,
	}

	_, err := a.client.Client().Collection(tsclient.DoctorsCollection).Documents().Upsert(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to index doctor: %w", err)
	}

	return nil
}

// Delete removes a doctor from the index
func (a *DoctorSearchAdapter) Delete(ctx context.Context, id string) error {
	_, err := a.client.Client().Collection(tsclient.DoctorsCollection).Document(id).Delete(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete doctor from index: %w", err)
	}
	return nil
}

// Search runs a free-text query over doctor name, specialization and
// clinic name
func (a *DoctorSearchAdapter) Search(ctx context.Context, query string, limit int) ([]*entities.Doctor, error) {
	if query == "" {
		query = "*"
	}
	if limit <= 0 {
		limit = 20
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String(query),
		QueryBy: pointer.String("name,specialization,clinic_name"),
		PerPage: pointer.Int(limit),
	}

	result, err := a.client.Client().Collection(tsclient.DoctorsCollection).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search doctors: %w", err)
	}

	doctors := []*entities.Doctor{}
	if result.Hits == nil {
		return doctors, nil
	}

	for _, hit := range *result.Hits {
		doc := *hit.Document

		doctor := &entities.Doctor{}
		if val, ok := doc["id"].(string); ok {
			doctor.ID = val
		}
		if val, ok := doc["name"].(string); ok {
			doctor.Name = val
		}
		if val, ok := doc["specialization"].(string); ok {
			doctor.Specialization = val
		}
		if val, ok := doc["clinic_id"].(string); ok {
			doctor.ClinicID = val
		}
		if val, ok := doc["clinic_name"].(string); ok {
			doctor.ClinicName = val
		}

		doctors = append(doctors, doctor)
	}

	return doctors, nil
}
