package main

import (
	"context"
	"log"
	"time"

	"github.com/wandermh/backend/internal/models"
	"github.com/wandermh/backend/internal/repositories"
	"github.com/wandermh/backend/pkg/config"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Loads a starter data set: a few tourists and guides, and well-known
// Maharashtra attractions and hotels. Safe to re-run; existing users are
// skipped and populated Mongo collections are left alone.
func main() {
	db, err := config.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	if err := db.Postgres.AutoMigrate(&models.User{}, &models.Notification{}, &models.SavedAttraction{}); err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	seedUsers(db.Postgres)

	mongoDB := db.Mongo.Database("wandermh")
	seedAttractions(ctx, repositories.NewMongoAttractionRepository(mongoDB))
	seedHotels(ctx, repositories.NewMongoHotelRepository(mongoDB))

	log.Println("Seeding complete.")
}

func seedUsers(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []models.User{
		{Name: "Aarav Kulkarni", Email: "aarav@example.com", Role: models.RoleTourist, Phone: "+919812340001", City: "Mumbai"},
		{Name: "Priya Deshmukh", Email: "priya@example.com", Role: models.RoleTourist, Phone: "+919812340002", City: "Nagpur"},
		{Name: "Sunil Pawar", Email: "sunil@example.com", Role: models.RoleGuide, Phone: "+919812340003", City: "Pune",
			Bio: "Trekking guide for the Sahyadri forts", Languages: "Marathi,Hindi,English", ExperienceYears: 8},
		{Name: "Meera Joshi", Email: "meera@example.com", Role: models.RoleGuide, Phone: "+919812340004", City: "Aurangabad",
			Bio: "Heritage walks around Ajanta and Ellora", Languages: "Marathi,Hindi,English", ExperienceYears: 12},
		{Name: "Rahul Shinde", Email: "rahul@example.com", Role: models.RoleGuide, Phone: "+919812340005", City: "Ratnagiri",
			Bio: "Konkan coast and beach tours", Languages: "Marathi,Hindi", ExperienceYears: 5},
	}

	repo := repositories.NewPostgresUserRepository(db)
	for i := range users {
		users[i].Password = string(hash)
		if _, err := repo.GetUserByEmail(users[i].Email); err == nil {
			continue // already seeded
		}
		if err := repo.CreateUser(&users[i]); err != nil {
			log.Printf("Failed to seed user %s: %v", users[i].Email, err)
		}
	}
	log.Println("Users seeded.")
}

func seedAttractions(ctx context.Context, repo *repositories.MongoAttractionRepository) {
	count, err := repo.CountAttractions(ctx)
	if err != nil {
		log.Fatalf("Failed to count attractions: %v", err)
	}
	if count > 0 {
		log.Println("Attractions collection already populated, skipping.")
		return
	}

	attractions := []models.Attraction{
		{Name: "Gateway of India", Description: "Iconic basalt arch monument on the Mumbai waterfront.", Category: "monument", City: "Mumbai", District: "Mumbai City", Latitude: 18.9220, Longitude: 72.8347, BestSeason: "November to February", EntryFee: 0},
		{Name: "Ajanta Caves", Description: "Rock-cut Buddhist cave monuments dating from the 2nd century BCE.", Category: "caves", City: "Aurangabad", District: "Aurangabad", Latitude: 20.5519, Longitude: 75.7033, BestSeason: "June to March", EntryFee: 40},
		{Name: "Ellora Caves", Description: "Rock-cut Hindu, Buddhist and Jain temple complex including Kailasa temple.", Category: "caves", City: "Aurangabad", District: "Aurangabad", Latitude: 20.0268, Longitude: 75.1779, BestSeason: "June to March", EntryFee: 40},
		{Name: "Raigad Fort", Description: "Hill fort and former capital of the Maratha empire.", Category: "fort", City: "Mahad", District: "Raigad", Latitude: 18.2344, Longitude: 73.4407, BestSeason: "October to February", EntryFee: 15},
		{Name: "Shaniwar Wada", Description: "18th-century fortification and seat of the Peshwas.", Category: "fort", City: "Pune", District: "Pune", Latitude: 18.5196, Longitude: 73.8553, BestSeason: "All year", EntryFee: 25},
		{Name: "Ganpatipule Beach", Description: "Quiet Konkan beach with the shoreline Ganapati temple.", Category: "beach", City: "Ganpatipule", District: "Ratnagiri", Latitude: 17.1445, Longitude: 73.2665, BestSeason: "October to March", EntryFee: 0},
		{Name: "Mahabaleshwar", Description: "Hill station with strawberry farms and valley viewpoints.", Category: "hill-station", City: "Mahabaleshwar", District: "Satara", Latitude: 17.9307, Longitude: 73.6477, BestSeason: "October to June", EntryFee: 0},
		{Name: "Tadoba National Park", Description: "Maharashtra's oldest tiger reserve.", Category: "wildlife", City: "Chandrapur", District: "Chandrapur", Latitude: 20.2400, Longitude: 79.3900, BestSeason: "October to June", EntryFee: 750},
		{Name: "Shirdi Sai Baba Temple", Description: "Pilgrimage town devoted to Sai Baba.", Category: "temple", City: "Shirdi", District: "Ahmednagar", Latitude: 19.7645, Longitude: 74.4762, BestSeason: "All year", EntryFee: 0},
	}

	for i := range attractions {
		if err := repo.CreateAttraction(ctx, &attractions[i]); err != nil {
			log.Printf("Failed to seed attraction %s: %v", attractions[i].Name, err)
		}
	}
	log.Println("Attractions seeded.")
}

func seedHotels(ctx context.Context, repo *repositories.MongoHotelRepository) {
	count, err := repo.CountHotels(ctx)
	if err != nil {
		log.Fatalf("Failed to count hotels: %v", err)
	}
	if count > 0 {
		log.Println("Hotels collection already populated, skipping.")
		return
	}

	hotels := []models.Hotel{
		{Name: "Sea View Residency", City: "Mumbai", Address: "Marine Drive, Mumbai", PricePerNight: 5500, Rating: 4.2, Latitude: 18.9432, Longitude: 72.8236, Amenities: []string{"wifi", "breakfast", "ac"}, Phone: "+912261110001"},
		{Name: "Deccan Lodge", City: "Pune", Address: "FC Road, Pune", PricePerNight: 2200, Rating: 3.9, Latitude: 18.5246, Longitude: 73.8412, Amenities: []string{"wifi", "parking"}, Phone: "+912025530002"},
		{Name: "Ajanta Heritage Stay", City: "Aurangabad", Address: "Station Road, Aurangabad", PricePerNight: 3100, Rating: 4.4, Latitude: 19.8762, Longitude: 75.3433, Amenities: []string{"wifi", "breakfast", "pool"}, Phone: "+912402480003"},
		{Name: "Konkan Breeze Resort", City: "Ganpatipule", Address: "Beach Road, Ganpatipule", PricePerNight: 2800, Rating: 4.0, Latitude: 17.1480, Longitude: 73.2690, Amenities: []string{"beach access", "restaurant"}, Phone: "+912352260004"},
		{Name: "Valley View Mahabaleshwar", City: "Mahabaleshwar", Address: "Panchgani Road, Mahabaleshwar", PricePerNight: 4000, Rating: 4.5, Latitude: 17.9250, Longitude: 73.6580, Amenities: []string{"wifi", "breakfast", "valley view"}, Phone: "+912168260005"},
	}

	for i := range hotels {
		if err := repo.CreateHotel(ctx, &hotels[i]); err != nil {
			log.Printf("Failed to seed hotel %s: %v", hotels[i].Name, err)
		}
	}
	log.Println("Hotels seeded.")
}
