// Command seed prepares a PostgreSQL database for the remote backend: it
// creates the schema and loads the demo projects and donations.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/cenkalti/backoff/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"fundraiser/internal/adapter/memory"
	"fundraiser/internal/infra"
	"fundraiser/internal/sqlinline"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type MigrateCmd struct{}

func (cmd *MigrateCmd) Run(ctx context.Context, db execer, logger *infra.Logger) error {
	if _, err := db.ExecContext(ctx, sqlinline.QCreateSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	logger.Info().Msg("schema ready")
	return nil
}

type SeedCmd struct{}

func (cmd *SeedCmd) Run(ctx context.Context, db execer, logger *infra.Logger) error {
	seed := memory.DefaultSeed()
	for _, p := range seed.Projects {
		if _, err := db.ExecContext(ctx, sqlinline.QUpsertProject,
			p.ID, p.Title, string(p.LocationType), p.Description, p.GoalAmount, p.RaisedAmount,
			string(p.Status), p.ImageURL, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
	}
	for _, d := range seed.Donations {
		if _, err := db.ExecContext(ctx, sqlinline.QSeedDonation,
			d.ID, d.Amount, d.DonorName, d.CampaignID, d.ProjectID, d.IsRecurring, d.CreatedAt,
		); err != nil {
			return fmt.Errorf("seed donation %s: %w", d.ID, err)
		}
	}
	logger.Info().Int("projects", len(seed.Projects)).Int("donations", len(seed.Donations)).Msg("seed loaded")
	return nil
}

type ResetCmd struct {
	Yes bool `help:"confirm dropping every table before reseeding."`
}

func (cmd *ResetCmd) Run(ctx context.Context, db execer, logger *infra.Logger) error {
	if !cmd.Yes {
		return fmt.Errorf("reset drops all data; pass --yes to confirm")
	}
	if _, err := db.ExecContext(ctx, sqlinline.QDropSchema); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	if err := (&MigrateCmd{}).Run(ctx, db, logger); err != nil {
		return err
	}
	return (&SeedCmd{}).Run(ctx, db, logger)
}

type CLI struct {
	DatabaseURL string        `required env:"DATABASE_URL" help:"PostgreSQL connection string."`
	AppEnv      string        `env:"APP_ENV" default:"development" help:"controls log formatting."`
	Timeout     time.Duration `default:"30s" help:"overall deadline, including waiting for the database."`

	Migrate MigrateCmd `cmd help:"Creates the projects and donations tables if missing."`
	Seed    SeedCmd    `cmd help:"Loads the demo projects and donations; existing rows are kept."`
	Reset   ResetCmd   `cmd help:"Drops the tables, recreates them and loads the demo data."`
}

func main() {
	_ = godotenv.Load()

	app := CLI{}
	cntx := kong.Parse(&app,
		kong.Name("seed"),
		kong.Description("fundraiser database tools"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	logger := infra.NewLogger(app.AppEnv)

	ctx, cancel := context.WithTimeout(context.Background(), app.Timeout)
	defer cancel()

	db, err := openDB(ctx, app.DatabaseURL, app.Timeout)
	if err != nil {
		logger.Error().Err(err).Msg("database unavailable")
		os.Exit(1)
	}
	defer db.Close()

	cntx.BindTo(ctx, (*context.Context)(nil))
	cntx.BindTo(db, (*execer)(nil))
	cntx.Bind(&logger)

	err = cntx.Run()
	cntx.FatalIfErrorf(err)
}

// openDB opens a database/sql handle and waits for the server to accept
// connections.
func openDB(ctx context.Context, url string, wait time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	ping := func() (struct{}, error) {
		return struct{}{}, db.PingContext(ctx)
	}
	if _, err := backoff.Retry(ctx, ping,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(wait),
	); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
