package main

import (
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	"luxestate/internal/config"
	"luxestate/internal/database"
	"luxestate/internal/modules/subscription"
	"luxestate/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&store.Entry{},
		&subscription.User{},
		&subscription.Plan{},
		&subscription.Subscription{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// ================== PLANS ==================
	log.Println("Seeding membership plans...")
	for _, plan := range subscription.DefaultPlans() {
		res := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"display_name", "price_monthly", "trial_days", "features", "is_active",
			}),
		}).Create(&plan)
		if res.Error != nil {
			log.Fatal("plan seed failed:", res.Error)
		}
		log.Printf("Plan %s (%s): %d/mo, trial %dd", plan.ID, plan.DisplayName, plan.PriceMonthly, plan.TrialDays)
	}

	// ================== DEMO USER ==================
	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	demo := subscription.User{
		Name:         "Demo Buyer",
		Email:        "demo@luxeestates.com",
		PasswordHash: string(hash),
		Phone:        "+91 98765 43210",
		City:         "Mumbai",
	}
	res := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "password_hash", "phone", "city"}),
	}).Create(&demo)
	if res.Error != nil {
		log.Fatal("demo user seed failed:", res.Error)
	}

	log.Println("Seed completed!")
	log.Println("Demo account: demo@luxeestates.com / demo123")
}
