// Resets and seeds the database.
// Run: go run scripts/reset_db.go
//
// Needs DATABASE_URL and, for the admin account, ADMIN_EMAIL/ADMIN_PASSWORD.

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	fmt.Println("Connecting to database...")
	fmt.Printf("Host: %s\n", extractHost(connStr))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close(ctx)

	color.Green("Connected successfully!")

	commands := []string{
		// Full wipe
		"DROP TABLE IF EXISTS leads CASCADE",
		"DROP TABLE IF EXISTS listings CASCADE",
		"DROP TABLE IF EXISTS properties CASCADE",
		"DROP TABLE IF EXISTS developers CASCADE",
		"DROP TABLE IF EXISTS users CASCADE",

		// Schema
		`CREATE TABLE IF NOT EXISTS users (
			user_id       UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email         TEXT UNIQUE NOT NULL,
			password_hash TEXT        NOT NULL,
			name          TEXT        NOT NULL,
			role          TEXT        NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS developers (
			developer_id      BIGSERIAL PRIMARY KEY,
			name              TEXT        NOT NULL,
			description       TEXT        NOT NULL DEFAULT '',
			logo_url          TEXT        NOT NULL DEFAULT '',
			established       INT         NOT NULL DEFAULT 0,
			flagship_projects TEXT[]      NOT NULL DEFAULT '{}',
			created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS properties (
			property_id   BIGSERIAL PRIMARY KEY,
			title         TEXT        NOT NULL,
			description   TEXT        NOT NULL DEFAULT '',
			price         BIGINT      NOT NULL,
			property_type TEXT        NOT NULL,
			beds          INT         NOT NULL DEFAULT 0,
			location_id   BIGINT      NOT NULL,
			developer_id  BIGINT      NOT NULL DEFAULT 0,
			premium       BOOLEAN     NOT NULL DEFAULT FALSE,
			exclusive     BOOLEAN     NOT NULL DEFAULT FALSE,
			new_launch    BOOLEAN     NOT NULL DEFAULT FALSE,
			status        TEXT        NOT NULL,
			amenities     TEXT[]      NOT NULL DEFAULT '{}',
			images        TEXT[]      NOT NULL DEFAULT '{}',
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS listings (
			listing_id            UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			title                 TEXT        NOT NULL,
			description           TEXT        NOT NULL DEFAULT '',
			price                 BIGINT      NOT NULL,
			property_type         TEXT        NOT NULL,
			beds                  INT         NOT NULL DEFAULT 0,
			location_id           BIGINT      NOT NULL,
			amenities             TEXT[]      NOT NULL DEFAULT '{}',
			photo_keys            TEXT[]      NOT NULL DEFAULT '{}',
			contact_name          TEXT        NOT NULL,
			contact_phone         TEXT        NOT NULL DEFAULT '',
			contact_email         TEXT        NOT NULL,
			status                TEXT        NOT NULL,
			rejection_reason      TEXT        NOT NULL DEFAULT '',
			published_property_id BIGINT,
			created_at            TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at            TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS leads (
			lead_id       UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			source        TEXT        NOT NULL,
			contact_name  TEXT        NOT NULL,
			contact_phone TEXT        NOT NULL DEFAULT '',
			contact_email TEXT        NOT NULL DEFAULT '',
			message       TEXT        NOT NULL DEFAULT '',
			property_id   BIGINT,
			preferences   JSONB,
			status        TEXT        NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,

		// Indexes the list queries lean on
		`CREATE INDEX IF NOT EXISTS idx_properties_created ON properties (created_at DESC, property_id DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_properties_location ON properties (location_id)`,
		`CREATE INDEX IF NOT EXISTS idx_listings_status ON listings (status)`,
		`CREATE INDEX IF NOT EXISTS idx_leads_status ON leads (status)`,

		// Seed developers
		`INSERT INTO developers (name, description, logo_url, established, flagship_projects) VALUES
			('Emaar Properties', 'Master developer behind Downtown Dubai and the Burj Khalifa.', '', 1997, ARRAY['Burj Khalifa', 'Dubai Mall', 'Dubai Hills Estate']),
			('Nakheel', 'Creator of Palm Jumeirah and the Dubai waterfront.', '', 2000, ARRAY['Palm Jumeirah', 'The World Islands']),
			('DAMAC Properties', 'Luxury residential and branded developments.', '', 2002, ARRAY['DAMAC Hills', 'DAMAC Lagoons']),
			('Sobha Realty', 'Premium communities with in-house construction.', '', 1976, ARRAY['Sobha Hartland'])`,

		// Seed catalog (location ids follow the community directory)
		`INSERT INTO properties (title, description, price, property_type, beds, location_id, developer_id, premium, exclusive, new_launch, status, amenities) VALUES
			('Signature Villa on Palm Jumeirah', 'Beachfront villa with private pool and skyline views.', 25000000, 'Villa', 5, 1, 2, TRUE, TRUE, FALSE, 'Ready', ARRAY['private pool', 'beach access', 'maid room']),
			('Burj View 2BR in Downtown', 'Corner apartment facing the fountain.', 3800000, 'Apartment', 2, 2, 1, TRUE, FALSE, FALSE, 'Ready', ARRAY['gym', 'pool', 'concierge']),
			('Marina Promenade 1BR', 'Walk to the beach and the marina walk.', 1650000, 'Apartment', 1, 3, 1, FALSE, FALSE, FALSE, 'Ready', ARRAY['gym', 'pool']),
			('Business Bay Studio', 'Compact investor unit near the canal.', 950000, 'Studio', 0, 4, 3, FALSE, FALSE, FALSE, 'Ready', ARRAY['gym']),
			('JVC Family Townhouse', 'Three-bedroom townhouse by the community park.', 2400000, 'Townhouse', 3, 5, 3, FALSE, FALSE, FALSE, 'Ready', ARRAY['garden', 'parking']),
			('Dubai Hills Golf Penthouse', 'Penthouse over the fairway, brand-new launch.', 7200000, 'Penthouse', 4, 6, 1, TRUE, FALSE, TRUE, 'Off-Plan', ARRAY['golf view', 'gym', 'pool']),
			('Arabian Ranches 4BR Villa', 'Established family community, landscaped garden.', 5600000, 'Villa', 4, 7, 1, FALSE, FALSE, FALSE, 'Ready', ARRAY['garden', 'community pool']),
			('Creek Harbour Launch 1BR', 'Waterfront off-plan tower, post-handover plan.', 1450000, 'Apartment', 1, 8, 1, FALSE, FALSE, TRUE, 'Off-Plan', ARRAY['gym', 'pool'])`,
	}

	for i, cmd := range commands {
		preview := strings.Join(strings.Fields(cmd), " ")
		if len(preview) > 60 {
			preview = preview[:60] + "..."
		}
		fmt.Printf("[%d/%d] %s\n", i+1, len(commands), preview)
		if _, err := conn.Exec(ctx, cmd); err != nil {
			color.Red("  failed: %v", err)
			log.Fatalf("Aborting after failed command")
		}
	}

	seedAdmin(ctx, conn)

	color.Green("Database reset complete!")
}

// seedAdmin creates the first back-office account when the env vars are set.
func seedAdmin(ctx context.Context, conn *pgx.Conn) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	_, err = conn.Exec(ctx,
		`INSERT INTO users (email, password_hash, name, role) VALUES ($1, $2, $3, $4)`,
		strings.ToLower(email), string(hash), "Admin", "ADMIN",
	)
	if err != nil {
		log.Fatalf("Failed to create admin account: %v", err)
	}
	color.Green("Admin account created: %s", email)
}

func extractHost(connStr string) string {
	if at := strings.LastIndex(connStr, "@"); at != -1 {
		rest := connStr[at+1:]
		if slash := strings.Index(rest, "/"); slash != -1 {
			return rest[:slash]
		}
		return rest
	}
	return "unknown"
}
