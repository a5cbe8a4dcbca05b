// Package pg bootstraps PostgreSQL access on top of pgx/v5.
//
// Connect builds a *pgxpool.Pool from Config and pings it, retrying with a
// constant backoff (github.com/sethvargo/go-retry) while the database comes
// up. Migrate runs goose migrations from an fs.FS, so schemas ship embedded
// in the binary next to the code that queries them. Healthcheck adapts the
// pool into a readiness probe.
//
//	var cfg pg.Config
//	config.MustLoad(&cfg)
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, migrations.FS, ".", log); err != nil {
//		return err
//	}
package pg
