package configs

import (
	"log"

	"backend/entity"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdmin creates the administrator account on first boot.
func SeedAdmin(db *gorm.DB) error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Name:     "Administrateur",
		Email:    email,
		Password: string(hash),
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedDishes loads the starter menu when the catalog is empty.
func SeedDishes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Dish{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	dishes := []entity.Dish{
		{Name: "Couscous Royal", Price: 2500, Category: "Plats principaux", Image: "https://images.unsplash.com/photo-1594041680534-e8c8cdebd659?auto=format&fit=crop&w=400&q=60"},
		{Name: "Tajine Poulet", Price: 2200, Category: "Plats principaux", Image: "https://images.unsplash.com/photo-1546833999-b9f581a1996d?auto=format&fit=crop&w=400&q=60"},
		{Name: "Méchoui", Price: 3000, Category: "Plats principaux", Image: "https://images.unsplash.com/photo-1555939594-58d7cb561ad1?auto=format&fit=crop&w=400&q=60"},
		{Name: "Salade César", Price: 1500, Category: "Entrées", Image: "https://images.unsplash.com/photo-1546793665-c74683f339c1?auto=format&fit=crop&w=400&q=60"},
		{Name: "Chorba Frik", Price: 1200, Category: "Entrées", Image: "https://images.unsplash.com/photo-1547592166-23ac45744acd?auto=format&fit=crop&w=400&q=60"},
		{Name: "Baklawa", Price: 800, Category: "Desserts", Image: "https://images.unsplash.com/photo-1519676867240-f03562e64548?auto=format&fit=crop&w=400&q=60"},
		{Name: "Thé à la menthe", Price: 300, Category: "Boissons", Image: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?auto=format&fit=crop&w=400&q=60"},
	}

	if err := db.Create(&dishes).Error; err != nil {
		return err
	}
	log.Printf("seeded %d dishes", len(dishes))
	return nil
}
