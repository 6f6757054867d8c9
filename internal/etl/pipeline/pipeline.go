// Package pipeline sequences the per-source ETL stages: extract, transform,
// clean, validate, load. Each source runs inside its own failure boundary so
// one bad dataset never blocks the others.
package pipeline

import (
	"context"
	"time"

	"github.com/healthai/etl/internal/config"
	"github.com/healthai/etl/internal/etl/extract"
	"github.com/healthai/etl/internal/etl/frame"
	"github.com/healthai/etl/internal/etl/load"
	"github.com/healthai/etl/internal/etl/transform"
	"github.com/healthai/etl/internal/logger"
	"github.com/healthai/etl/internal/repos"
)

const (
	TableExercices = "exercices"
	TableAliments  = "aliments"
	TableUsers     = "utilisateurs"
	TableMesures   = "mesures_biometriques"
)

type StageResult struct {
	Name string
	Rows int
	Load load.Result
	Err  error
}

type Report struct {
	Started  time.Time
	Finished time.Time
	Stages   []StageResult
}

// Failed returns the stages that did not complete.
func (r *Report) Failed() []StageResult {
	var failed []StageResult
	for _, s := range r.Stages {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

type Pipeline struct {
	sources  config.Sources
	loader   *load.Loader
	userRepo repos.UserRepo
	catalog  *extract.CatalogClient
	log      *logger.Logger
}

func New(sources config.Sources, store load.Store, userRepo repos.UserRepo, baseLog *logger.Logger) *Pipeline {
	log := baseLog.With("component", "Pipeline")
	return &Pipeline{
		sources:  sources,
		loader:   load.NewLoader(store, baseLog),
		userRepo: userRepo,
		catalog: &extract.CatalogClient{
			URL:    sources.ExerciseCatalogURL,
			APIKey: sources.ExerciseAPIKey,
			Log:    log,
		},
		log: log,
	}
}

// Run executes every stage in order. Stage failures are logged and recorded
// in the report; the run itself terminates as completed regardless of
// individual stage outcomes.
func (p *Pipeline) Run(ctx context.Context) *Report {
	report := &Report{Started: time.Now()}
	p.log.Info("Starting ETL pipeline")

	p.runStage(ctx, report, "exercices", p.runExercises)
	p.runStage(ctx, report, "aliments_nutrition", p.runNutritionFoods)
	if p.sources.FoodsCSV != "" {
		p.runStage(ctx, report, "aliments_csv", p.runCSVFoods)
	}
	p.runStage(ctx, report, "utilisateurs_gym", p.runGymMembers)
	p.runStage(ctx, report, "utilisateurs_diet", p.runDietUsers)

	report.Finished = time.Now()
	if failed := report.Failed(); len(failed) > 0 {
		p.log.Warn("ETL pipeline completed with stage failures", "failed_stages", len(failed))
	} else {
		p.log.Info("ETL pipeline completed")
	}
	return report
}

type stageFunc func(ctx context.Context, report *Report) error

// runStage is the per-source failure boundary.
func (p *Pipeline) runStage(ctx context.Context, report *Report, name string, fn stageFunc) {
	log := p.log.With("stage", name)
	log.Info("Stage starting")
	if err := fn(ctx, report); err != nil {
		log.Error("Stage failed", "error", err)
		report.Stages = append(report.Stages, StageResult{Name: name, Err: err})
		return
	}
	log.Info("Stage completed")
}

func (p *Pipeline) runExercises(ctx context.Context, report *Report) error {
	raw, err := p.catalog.Fetch(ctx, p.sources.RowLimit)
	if err != nil {
		return err
	}

	f := transform.Exercises(raw, p.log)
	f = transform.Clean(f, p.log)
	if err := transform.ValidateRequired(f, []string{"nom", "type", "niveau", "equipement"}); err != nil {
		return err
	}

	result, err := p.loader.Upsert(ctx, TableExercices, f.Rows, "nom")
	if err != nil {
		return err
	}
	report.Stages = append(report.Stages, StageResult{Name: "exercices", Rows: f.Len(), Load: result})
	return nil
}

func (p *Pipeline) runNutritionFoods(ctx context.Context, report *Report) error {
	raw, err := extract.CSV(p.sources.NutritionCSV, p.sources.RowLimit, p.log)
	if err != nil {
		return err
	}
	f := transform.NutritionFoods(raw, p.log)
	return p.loadFoods(ctx, report, "aliments_nutrition", f)
}

func (p *Pipeline) runCSVFoods(ctx context.Context, report *Report) error {
	raw, err := extract.CSV(p.sources.FoodsCSV, p.sources.RowLimit, p.log)
	if err != nil {
		return err
	}
	f := transform.CSVFoods(raw, p.log)
	return p.loadFoods(ctx, report, "aliments_csv", f)
}

func (p *Pipeline) loadFoods(ctx context.Context, report *Report, stage string, f *frame.Frame) error {
	f = transform.Clean(f, p.log)
	if err := transform.ValidateRequired(f, []string{"nom", "calories", "proteines", "glucides", "lipides"}); err != nil {
		return err
	}

	result, err := p.loader.Upsert(ctx, TableAliments, f.Rows, "nom")
	if err != nil {
		return err
	}
	report.Stages = append(report.Stages, StageResult{Name: stage, Rows: f.Len(), Load: result})
	return nil
}

// runGymMembers is the two-phase stage: upsert users, read their surrogate
// ids back by email, then insert the measurements referencing those ids.
func (p *Pipeline) runGymMembers(ctx context.Context, report *Report) error {
	raw, err := extract.CSV(p.sources.GymMembersCSV, p.sources.RowLimit, p.log)
	if err != nil {
		return err
	}

	users := transform.GymMembersUsers(raw, p.log)
	if err := p.loadUsers(ctx, report, "utilisateurs_gym", users); err != nil {
		return err
	}

	emails := make([]string, raw.Len())
	for i := range raw.Rows {
		emails[i] = transform.GymMemberEmail(i)
	}
	emailToID, err := p.userRepo.IDsByEmail(ctx, nil, emails)
	if err != nil {
		return err
	}

	mesures := transform.GymMembersMeasurements(raw, emailToID, p.log)
	if err := p.loader.Insert(ctx, TableMesures, mesures.Rows); err != nil {
		return err
	}
	report.Stages = append(report.Stages, StageResult{Name: "mesures_biometriques", Rows: mesures.Len()})
	return nil
}

func (p *Pipeline) runDietUsers(ctx context.Context, report *Report) error {
	raw, err := extract.CSV(p.sources.DietRecoCSV, p.sources.RowLimit, p.log)
	if err != nil {
		return err
	}
	users := transform.DietRecoUsers(raw, p.log)
	return p.loadUsers(ctx, report, "utilisateurs_diet", users)
}

func (p *Pipeline) loadUsers(ctx context.Context, report *Report, stage string, f *frame.Frame) error {
	f = transform.Clean(f, p.log)
	f = transform.RestoreListColumns(f, []string{"objectifs"}, p.log)
	if err := transform.ValidateRequired(f, []string{"email", "sexe", "type_abonnement"}); err != nil {
		return err
	}

	result, err := p.loader.Upsert(ctx, TableUsers, f.Rows, "email")
	if err != nil {
		return err
	}
	report.Stages = append(report.Stages, StageResult{Name: stage, Rows: f.Len(), Load: result})
	return nil
}
