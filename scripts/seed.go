package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/dento-health/dento-portal/backend/internal/adapters/database"
	"github.com/dento-health/dento-portal/backend/internal/adapters/search"
	"github.com/dento-health/dento-portal/backend/internal/application/services"
	"github.com/dento-health/dento-portal/backend/internal/domain/entities"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/postgres"
	"github.com/dento-health/dento-portal/backend/internal/infrastructure/clients/typesense"
	"github.com/dento-health/dento-portal/backend/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer pgClient.Close()

	tsClient, err := typesense.NewClient(&cfg.Typesense)
	var searchRepo *search.DoctorSearchAdapter
	if err == nil {
		searchRepo = search.NewDoctorSearchAdapter(tsClient)
		if err := searchRepo.InitSchema(context.Background()); err != nil {
			log.Printf("Failed to init search schema: %v", err)
		}
	}

	clinicRepo := database.NewClinicAdapter(pgClient)
	doctorRepo := database.NewDoctorAdapter(pgClient)
	userRepo := database.NewUserAdapter(pgClient)
	doctorService := services.NewDoctorService(doctorRepo, clinicRepo, searchRepo)

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, truncating tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				reports,
				treatment_plans,
				treatments,
				appointments,
				patients,
				doctors,
				clinics,
				users
			RESTART IDENTITY CASCADE
		`)
		if err != nil {
			log.Fatalf("Failed to reset tables: %v", err)
		}
	}

	// 1. Seed the specialty clinics. IDs are stable slugs because the
	// diagnosis engine refers to them when suggesting a clinic.
	clinics := []entities.Clinic{
		{ID: "conservative", Name: "العلاج التحفظي", NameEn: "Conservative Treatment", SpecializationTag: "restorative"},
		{ID: "gums", Name: "علاج اللثة", NameEn: "Gum Treatment", SpecializationTag: "periodontics"},
		{ID: "surgery", Name: "جراحة الفم", NameEn: "Oral Surgery", SpecializationTag: "oral-surgery"},
		{ID: "orthodontics", Name: "تقويم الأسنان", NameEn: "Orthodontics", SpecializationTag: "orthodontics"},
		{ID: "cosmetic", Name: "تجميل الأسنان", NameEn: "Cosmetic Dentistry", SpecializationTag: "cosmetic"},
		{ID: "implants", Name: "زراعة الأسنان", NameEn: "Dental Implants", SpecializationTag: "implantology"},
		{ID: "pediatric", Name: "أسنان الأطفال", NameEn: "Pediatric Dentistry", SpecializationTag: "pediatric"},
		{ID: "removable", Name: "التركيبات المتحركة", NameEn: "Removable Prosthetics", SpecializationTag: "prosthodontics"},
		{ID: "fixed", Name: "التركيبات الثابتة", NameEn: "Fixed Prosthetics", SpecializationTag: "prosthodontics"},
	}

	for _, c := range clinics {
		if err := clinicRepo.Create(ctx, &c); err != nil {
			log.Printf("Failed to create clinic %s: %v", c.NameEn, err)
		}
	}

	// 2. Seed doctors through the service so the search index stays in sync
	doctors := []entities.Doctor{
		{ID: uuid.New().String(), Name: "د. أحمد مصطفى", Specialization: "Restorative Dentistry", ClinicID: "conservative", Contact: "+20-100-555-0101"},
		{ID: uuid.New().String(), Name: "د. منى عبد الرحمن", Specialization: "Periodontics", ClinicID: "gums", Contact: "+20-100-555-0102"},
		{ID: uuid.New().String(), Name: "د. خالد سمير", Specialization: "Oral and Maxillofacial Surgery", ClinicID: "surgery", Contact: "+20-100-555-0103"},
		{ID: uuid.New().String(), Name: "د. سارة الجندي", Specialization: "Orthodontics", ClinicID: "orthodontics", Contact: "+20-100-555-0104"},
		{ID: uuid.New().String(), Name: "د. ياسمين فوزي", Specialization: "Cosmetic Dentistry", ClinicID: "cosmetic", Contact: "+20-100-555-0105"},
		{ID: uuid.New().String(), Name: "د. عمر الشريف", Specialization: "Implantology", ClinicID: "implants", Contact: "+20-100-555-0106"},
		{ID: uuid.New().String(), Name: "د. هالة نبيل", Specialization: "Pediatric Dentistry", ClinicID: "pediatric", Contact: "+20-100-555-0107"},
		{ID: uuid.New().String(), Name: "د. محمود رضوان", Specialization: "Prosthodontics", ClinicID: "fixed", Contact: "+20-100-555-0108"},
	}

	for i := range doctors {
		d := doctors[i]
		if err := doctorService.Create(ctx, &d); err != nil {
			log.Printf("Failed to create doctor %s: %v", d.Name, err)
		}
	}

	// 3. Seed a bootstrap admin account
	admin := entities.User{
		ID:        uuid.New().String(),
		Username:  "admin",
		Password:  getEnvDefault("SEED_ADMIN_PASSWORD", "admin"),
		FullName:  "Portal Administrator",
		UserType:  entities.UserTypeAdmin,
		CreatedAt: time.Now(),
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		log.Printf("Failed to create admin user: %v", err)
	}

	log.Println("Seeding completed successfully")
}

func getEnvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
