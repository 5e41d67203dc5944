package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"growth-agent/internal/core/domain"
)

const (
	seedProfiles        = 5
	seedContentsPerUser = 6
)

var (
	seedBusinessTypes = []string{"restaurant", "salon", "retail", "bakery", "tailoring", "electronics"}
	seedCities        = []string{"Lagos", "Nairobi", "Accra", "Kampala", "Kigali", "Dar es Salaam"}
	seedPlatforms     = []string{"facebook", "instagram", "twitter", "linkedin", "general"}
)

// Seed inserts demo business profiles owned by users demo-user-1..N, each
// with a handful of marketing content. Existing demo users are left as is.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	gofakeit.Seed(time.Now().UnixNano())
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for i := 1; i <= seedProfiles; i++ {
		userID := fmt.Sprintf("demo-user-%d", i)
		contact, _ := json.Marshal(map[string]string{
			"phone": gofakeit.Phone(),
			"email": gofakeit.Email(),
		})

		var businessID string
		err := db.QueryRow(ctx, `INSERT INTO business_profiles
    (id, user_id, business_name, business_type, description, target_audience, location, contact_info)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT (user_id) DO NOTHING RETURNING id`,
			uuid.NewString(), userID, gofakeit.Company(),
			seedBusinessTypes[r.Intn(len(seedBusinessTypes))],
			gofakeit.Sentence(10), "local "+gofakeit.JobTitle()+"s",
			seedCities[r.Intn(len(seedCities))], contact).Scan(&businessID)
		if errors.Is(err, pgx.ErrNoRows) {
			// demo user already exists
			continue
		}
		if err != nil {
			return err
		}

		for j := 0; j < seedContentsPerUser; j++ {
			ct := domain.ContentTypes[r.Intn(len(domain.ContentTypes))]
			meta, _ := json.Marshal(map[string]any{
				"tone":         "professional",
				"theme":        gofakeit.Word(),
				"generated_at": time.Now().UTC().Format(time.RFC3339),
			})
			_, err = db.Exec(ctx, `INSERT INTO marketing_contents
    (id, business_id, content_type, platform, content_text, metadata, is_approved, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
				uuid.NewString(), businessID, string(ct),
				seedPlatforms[r.Intn(len(seedPlatforms))],
				gofakeit.Paragraph(1, 3, 12, " ")+" #"+gofakeit.Word(),
				meta, r.Intn(2) == 0,
				time.Now().Add(-time.Duration(r.Intn(72))*time.Hour))
			if err != nil {
				return err
			}
		}
	}
	return nil
}
