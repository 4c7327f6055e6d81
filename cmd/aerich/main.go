// Command aerich generates, records and applies SQL schema migrations.
//
// Usage:
//
//	aerich init                     write a default aerich.yaml
//	aerich migrate -name <name>     record statements from stdin as a migration
//	aerich apply                    apply recorded migrations to the database
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	atlasmigrate "ariga.io/atlas/sql/migrate"

	"github.com/LanceMoe/aerich"
	"github.com/LanceMoe/aerich/config"
	"github.com/LanceMoe/aerich/dialect"
	"github.com/LanceMoe/aerich/dialect/sql"
	"github.com/LanceMoe/aerich/migrate"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const defaultConfig = `dialect: sqlite
dsn: file:aerich.db
location: ./migrations
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("aerich: ")
	cfgPath := flag.String("config", "aerich.yaml", "path to the configuration file")
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatal("missing command: init, migrate or apply")
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]
	if cmd == "init" {
		if err := initConfig(*cfgPath); err != nil {
			log.Fatal(err)
		}
		return
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	switch cmd {
	case "migrate":
		err = runMigrate(cfg, args)
	case "apply":
		err = runApply(context.Background(), cfg)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func initConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return os.WriteFile(path, []byte(defaultConfig), 0o644)
}

// runMigrate records statements read from stdin, one per line, as a named
// migration file.
func runMigrate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)
	name := fs.String("name", "update", "migration name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var stmts []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			stmts = append(stmts, strings.TrimSuffix(s, ";"))
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	w, err := migrate.New(cfg.Location)
	if err != nil {
		return err
	}
	if err := w.Write(*name, stmts); err != nil {
		return err
	}
	log.Printf("recorded %d statement(s) as %q in %s", len(stmts), *name, cfg.Location)
	return nil
}

// runApply executes every statement of every migration file in order,
// one transaction per file.
func runApply(ctx context.Context, cfg *config.Config) error {
	if cfg.DSN == "" {
		return fmt.Errorf("config has no dsn")
	}
	drv, err := sql.Open(driverName(cfg.Dialect), cfg.DSN)
	if err != nil {
		return err
	}
	defer drv.Close()
	dir, err := atlasmigrate.NewLocalDir(cfg.Location)
	if err != nil {
		return err
	}
	files, err := dir.Files()
	if err != nil {
		return err
	}
	for _, f := range files {
		stmts, err := f.Stmts()
		if err != nil {
			return fmt.Errorf("read %s: %w", f.Name(), err)
		}
		if err := aerich.Apply(ctx, drv, stmts); err != nil {
			return fmt.Errorf("apply %s: %w", f.Name(), err)
		}
		log.Printf("applied %s (%d statement(s))", f.Name(), len(stmts))
	}
	return nil
}

// driverName maps a dialect to the registered database/sql driver name.
func driverName(d string) string {
	switch d {
	case dialect.Postgres:
		return "postgres" // lib/pq
	case dialect.SQLite:
		return "sqlite" // modernc.org/sqlite
	default:
		return "mysql"
	}
}
