// Package seed generates coherent synthetic activity data (food journal,
// workout sessions, progressions) for users already loaded by the pipeline.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthai/etl/internal/logger"
	"github.com/healthai/etl/internal/types"
)

const (
	insertBatchSize = 200

	journalEntriesPerUser = 20
	sessionsPerUser       = 8
	progressionsPerUser   = 5
	journalUserCap        = 150
	sessionUserCap        = 100
	progressionUserCap    = 80
)

type Totals struct {
	JournalEntries   int
	Sessions         int
	SessionExercices int
	Progressions     int
}

type Seeder struct {
	db  *gorm.DB
	log *logger.Logger
	rnd *rand.Rand
}

// NewSeeder builds a seeder with a fixed random seed, so repeated runs
// generate the same activity data.
func NewSeeder(db *gorm.DB, baseLog *logger.Logger) *Seeder {
	return &Seeder{
		db:  db,
		log: baseLog.With("component", "Seeder"),
		rnd: rand.New(rand.NewSource(42)),
	}
}

func (s *Seeder) Run(ctx context.Context) (*Totals, error) {
	userIDs, err := s.fetchIDs(ctx, &types.Utilisateur{}, "id_utilisateur", 200)
	if err != nil {
		return nil, err
	}
	alimentIDs, err := s.fetchIDs(ctx, &types.Aliment{}, "id_aliment", 500)
	if err != nil {
		return nil, err
	}
	exerciceIDs, err := s.fetchIDs(ctx, &types.Exercice{}, "id_exercice", 500)
	if err != nil {
		return nil, err
	}
	s.log.Info("Fetched existing ids", "utilisateurs", len(userIDs), "aliments", len(alimentIDs), "exercices", len(exerciceIDs))

	if len(userIDs) == 0 || len(alimentIDs) == 0 || len(exerciceIDs) == 0 {
		return nil, fmt.Errorf("missing base data, run the ETL pipeline first")
	}

	totals := &Totals{}

	totals.JournalEntries, err = s.seedJournal(ctx, capIDs(userIDs, journalUserCap), alimentIDs)
	if err != nil {
		return nil, err
	}
	totals.Sessions, totals.SessionExercices, err = s.seedSessions(ctx, capIDs(userIDs, sessionUserCap), exerciceIDs)
	if err != nil {
		return nil, err
	}
	totals.Progressions, err = s.seedProgressions(ctx, capIDs(userIDs, progressionUserCap), exerciceIDs)
	if err != nil {
		return nil, err
	}

	s.log.Info("Seed completed",
		"journal_alimentaire", totals.JournalEntries,
		"sessions_sport", totals.Sessions,
		"session_exercices", totals.SessionExercices,
		"progressions", totals.Progressions,
	)
	return totals, nil
}

func (s *Seeder) seedJournal(ctx context.Context, userIDs, alimentIDs []uuid.UUID) (int, error) {
	s.log.Info("Seeding journal alimentaire", "users", len(userIDs), "entries_per_user", journalEntriesPerUser)

	quantites := []float64{50, 80, 100, 150, 200, 250, 300, 350, 400, 500}
	var records []types.JournalEntree
	for _, uid := range userIDs {
		for range journalEntriesPerUser {
			records = append(records, types.JournalEntree{
				IDUtilisateur:    uid,
				IDAliment:        alimentIDs[s.rnd.Intn(len(alimentIDs))],
				Quantite:         quantites[s.rnd.Intn(len(quantites))],
				DateConsommation: s.randomDate(90),
			})
		}
	}

	if err := s.db.WithContext(ctx).CreateInBatches(records, insertBatchSize).Error; err != nil {
		return 0, fmt.Errorf("seed journal_alimentaire: %w", err)
	}
	return len(records), nil
}

func (s *Seeder) seedSessions(ctx context.Context, userIDs, exerciceIDs []uuid.UUID) (int, int, error) {
	s.log.Info("Seeding sessions sport", "users", len(userIDs), "sessions_per_user", sessionsPerUser)

	intensites := []string{types.IntensiteFaible, types.IntensiteModeree, types.IntensiteElevee}
	durees := []int64{30, 45, 60, 75, 90, 120}

	var sessions []types.SessionSport
	for _, uid := range userIDs {
		for range sessionsPerUser {
			sessions = append(sessions, types.SessionSport{
				IDUtilisateur: uid,
				Duree:         durees[s.rnd.Intn(len(durees))],
				Intensite:     intensites[s.rnd.Intn(len(intensites))],
				DateSession:   s.randomDate(90),
			})
		}
	}

	// CreateInBatches reads the generated session ids back, which the link
	// rows below depend on.
	if err := s.db.WithContext(ctx).CreateInBatches(&sessions, insertBatchSize).Error; err != nil {
		return 0, 0, fmt.Errorf("seed sessions_sport: %w", err)
	}

	var links []types.SessionExercice
	for _, session := range sessions {
		for _, exoID := range s.sample(exerciceIDs, 2+s.rnd.Intn(3)) {
			links = append(links, types.SessionExercice{
				IDSession:         session.ID,
				IDExercice:        exoID,
				NombreSeries:      int64(2 + s.rnd.Intn(4)),
				NombreRepetitions: int64(6 + s.rnd.Intn(10)),
				Poids:             round1(5 + s.rnd.Float64()*95),
			})
		}
	}
	if err := s.db.WithContext(ctx).CreateInBatches(links, insertBatchSize).Error; err != nil {
		return 0, 0, fmt.Errorf("seed session_exercices: %w", err)
	}
	return len(sessions), len(links), nil
}

func (s *Seeder) seedProgressions(ctx context.Context, userIDs, exerciceIDs []uuid.UUID) (int, error) {
	s.log.Info("Seeding progressions", "users", len(userIDs), "per_user", progressionsPerUser)

	typesProgression := []string{types.ProgressionPoids, types.ProgressionRepetitions, types.ProgressionDuree}
	var records []types.Progression
	for _, uid := range userIDs {
		for _, exoID := range s.sample(exerciceIDs, progressionsPerUser) {
			avant := round1(10 + s.rnd.Float64()*70)
			records = append(records, types.Progression{
				IDUtilisateur:   uid,
				IDExercice:      exoID,
				DateProgression: s.randomDate(60),
				ValeurAvant:     avant,
				ValeurApres:     round1(avant + 1 + s.rnd.Float64()*14),
				TypeProgression: typesProgression[s.rnd.Intn(len(typesProgression))],
			})
		}
	}

	if err := s.db.WithContext(ctx).CreateInBatches(records, insertBatchSize).Error; err != nil {
		return 0, fmt.Errorf("seed progressions: %w", err)
	}
	return len(records), nil
}

func (s *Seeder) fetchIDs(ctx context.Context, model any, idCol string, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := s.db.WithContext(ctx).Model(model).Limit(limit).Pluck(idCol, &ids).Error; err != nil {
		return nil, fmt.Errorf("fetch %s: %w", idCol, err)
	}
	return ids, nil
}

func (s *Seeder) randomDate(daysBack int) time.Time {
	return time.Now().
		AddDate(0, 0, -s.rnd.Intn(daysBack+1)).
		Add(-time.Duration(s.rnd.Intn(24)) * time.Hour).
		Add(-time.Duration(s.rnd.Intn(60)) * time.Minute)
}

// sample picks n distinct ids (fewer when the pool is smaller).
func (s *Seeder) sample(pool []uuid.UUID, n int) []uuid.UUID {
	if n > len(pool) {
		n = len(pool)
	}
	perm := s.rnd.Perm(len(pool))
	picked := make([]uuid.UUID, n)
	for i := range n {
		picked[i] = pool[perm[i]]
	}
	return picked
}

func capIDs(ids []uuid.UUID, n int) []uuid.UUID {
	if len(ids) > n {
		return ids[:n]
	}
	return ids
}

func round1(x float64) float64 {
	return float64(int(x*10+0.5)) / 10
}
