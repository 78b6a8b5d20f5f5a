package seeder

import (
	"crypto/sha256"
	"encoding/hex"
	"log"

	"github.com/google/uuid"

	"github.com/jingjie2002/GM-Tools-Admin/internal/domain"
)

// Seeder handles database seeding operations
type Seeder struct {
	adminRepo  domain.AdminRepository
	playerRepo domain.PlayerRepository
}

// NewSeeder creates a new seeder instance
func NewSeeder(adminRepo domain.AdminRepository, playerRepo domain.PlayerRepository) *Seeder {
	return &Seeder{
		adminRepo:  adminRepo,
		playerRepo: playerRepo,
	}
}

// SeedAdmins seeds the database with initial admin users
func (s *Seeder) SeedAdmins() error {
	log.Printf("Seeding admin users...")

	hash := sha256.Sum256([]byte("admin123"))
	passwordHash := hex.EncodeToString(hash[:])

	admins := []struct {
		username string
		role     string
	}{
		{"superadmin", domain.RoleSuperAdmin},
		{"gm_alice", domain.RoleAdmin},
		{"gm_bob", domain.RoleAdmin},
	}

	for _, a := range admins {
		existing, err := s.adminRepo.GetByUsername(a.username)
		if err != nil {
			log.Printf("Error checking existing admin %s: %v", a.username, err)
			continue
		}
		if existing != nil {
			continue
		}

		admin := &domain.AdminUser{
			ID:       uuid.New().String(),
			Username: a.username,
			Password: passwordHash,
			Role:     a.role,
		}
		if err := s.adminRepo.Create(admin); err != nil {
			log.Printf("Failed to seed admin %s: %v", a.username, err)
			continue
		}
		log.Printf("Seeded admin %s (%s)", a.username, a.role)
	}

	return nil
}

// SeedPlayers seeds a handful of sample players
func (s *Seeder) SeedPlayers() error {
	log.Printf("Seeding players...")

	players := []struct {
		nickname string
		level    int
		gold     int64
	}{
		{"DragonSlayer", 42, 12500},
		{"ShadowMage", 17, 800},
		{"IronFist", 60, 43000},
		{"LunaWhisper", 5, 150},
	}

	for _, p := range players {
		player := domain.NewPlayer(p.nickname, p.level, p.gold)
		if err := s.playerRepo.Create(player); err != nil {
			log.Printf("Failed to seed player %s: %v", p.nickname, err)
		}
	}

	return nil
}
