package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"nilinki/internal/database"
	"nilinki/internal/domain"
	"nilinki/internal/repository"
)

func main() {
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "nilinki.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM favorites")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM booking_inquiries")
	db.Exec("DELETE FROM band_events")
	db.Exec("DELETE FROM band_videos")
	db.Exec("DELETE FROM band_rate_cards")
	db.Exec("DELETE FROM bands")
	db.Exec("DELETE FROM users")

	users := repository.NewUserRepository(db)
	bands := repository.NewBandRepository(db)
	inquiries := repository.NewInquiryRepository(db)
	reviews := repository.NewReviewRepository(db)
	favorites := repository.NewFavoriteRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	clientEmails := []string{"maya@example.com", "jonas@example.com", "sofia@example.com"}
	clients := make([]*domain.User, 0, len(clientEmails))
	for i, email := range clientEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleClient,
			Name:         fmt.Sprintf("Client %d", i+1),
			Phone:        fmt.Sprintf("+1 555 010 10%02d", i+1),
		}
		if err := users.Create(ctx, client); err != nil {
			log.Fatal("failed to create client:", err)
		}
		clients = append(clients, client)
	}

	type seedBand struct {
		ownerEmail string
		name       string
		genre      string
		location   string
		featured   bool
	}
	seedBands := []seedBand{
		{"booking@velvetthunder.example", "Velvet Thunder", "Rock", "Berlin", true},
		{"hello@midnightbrass.example", "Midnight Brass", "Jazz", "Hamburg", true},
		{"contact@norasky.example", "Nora & The Sky", "Pop", "Munich", false},
		{"mail@steelstrings.example", "Steel Strings", "Country", "Cologne", false},
	}

	seeded := make([]*domain.Band, 0, len(seedBands))
	for _, sb := range seedBands {
		hash, _ := bcrypt.GenerateFromPassword([]byte("band123"), bcrypt.DefaultCost)
		owner := &domain.User{
			Email:        sb.ownerEmail,
			PasswordHash: string(hash),
			Role:         domain.RoleBand,
			Name:         sb.name + " Management",
		}
		if err := users.Create(ctx, owner); err != nil {
			log.Fatal("failed to create band owner:", err)
		}

		band := &domain.Band{
			OwnerID:     owner.ID,
			Name:        sb.name,
			Genre:       sb.genre,
			Location:    sb.location,
			Bio:         fmt.Sprintf("%s is a %s band based in %s.", sb.name, sb.genre, sb.location),
			Featured:    sb.featured,
			YearsActive: 5,
			Members:     4,
		}
		if err := bands.Create(ctx, band); err != nil {
			log.Fatal("failed to create band:", err)
		}
		seeded = append(seeded, band)
	}

	// ================== RATE CARDS / VIDEOS / EVENTS ==================
	log.Println("Creating rate cards, videos and events...")
	eventTypes := []string{"Wedding", "Corporate Event", "Private Party"}
	for _, band := range seeded {
		for j, et := range eventTypes {
			price := 800.0 + float64(j)*400
			db.Exec(
				"INSERT INTO band_rate_cards (id, band_id, event_type, price, duration, created_at) VALUES (?, ?, ?, ?, ?, ?)",
				fmt.Sprintf("%s-rate-%d", band.ID, j), band.ID, et, price, "3 hours", time.Now(),
			)
		}
		db.Exec(
			"INSERT INTO band_videos (id, band_id, title, video_url, platform, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			band.ID+"-video-1", band.ID, "Live at Summer Fest",
			"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "youtube", time.Now(),
		)
		db.Exec(
			"INSERT INTO band_events (id, band_id, name, venue, event_date, event_time, is_visible, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			band.ID+"-event-1", band.ID, "Open Air Night", "Stadtpark",
			time.Now().AddDate(0, 1, 0).Format("2006-01-02"), "20:00", true, time.Now(),
		)
	}

	// ================== INQUIRIES ==================
	log.Println("Creating booking inquiries...")
	statuses := []domain.InquiryStatus{
		domain.InquiryPending,
		domain.InquiryAccepted,
		domain.InquiryCompleted,
		domain.InquiryDeclined,
	}
	for i, status := range statuses {
		client := clients[i%len(clients)]
		band := seeded[i%len(seeded)]
		inq := &domain.BookingInquiry{
			BandID:        band.ID,
			ClientID:      client.ID,
			EventDate:     time.Now().AddDate(0, 0, 14+i*7).Format("2006-01-02"),
			EventType:     eventTypes[i%len(eventTypes)],
			EventLocation: band.Location,
			Message:       fmt.Sprintf("From: %s (%s)\n\nWe would love to have you play at our event.", client.Name, client.Email),
			Status:        status,
		}
		if err := inquiries.Create(ctx, inq); err != nil {
			log.Fatal("failed to create inquiry:", err)
		}
	}

	// ================== REVIEWS ==================
	// The third inquiry above is completed (client 3, band 3), so that pair
	// can legitimately hold a review.
	log.Println("Creating reviews...")
	completedClient := clients[2]
	completedBand := seeded[2]
	if err := reviews.Create(ctx, &domain.Review{
		BandID:    completedBand.ID,
		AuthorID:  completedClient.ID,
		Rating:    5,
		Content:   "Fantastic show, the dance floor was never empty!",
		EventType: "Wedding",
	}); err != nil {
		log.Fatal("failed to create review:", err)
	}

	// ================== FAVORITES ==================
	log.Println("Creating favorites...")
	if _, err := favorites.Add(ctx, clients[0].ID, seeded[0].ID); err != nil {
		log.Fatal("failed to create favorite:", err)
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Clients: maya@example.com ... sofia@example.com / client123")
	log.Println("Bands: booking@velvetthunder.example ... / band123")
}
