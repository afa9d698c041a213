// Command migrate bulk-loads registrations into the configured store, or
// dumps the current collection.
//
//	migrate -file registrations.json
//	migrate -export -file backup.json
//
// Import replaces the whole collection in one transaction.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/influencer-summit/summit-api/internal/app"
	"github.com/influencer-summit/summit-api/internal/core/domain"
	"github.com/influencer-summit/summit-api/internal/core/ports"
	"github.com/influencer-summit/summit-api/internal/core/service"
	"github.com/influencer-summit/summit-api/internal/pkg/config"
	"github.com/influencer-summit/summit-api/pkg/logger"
)

func main() {
	file := flag.String("file", "", "JSON file to import from, or export to (stdout when empty on export)")
	export := flag.Bool("export", false, "write the stored registrations instead of importing")
	flag.Parse()

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true, Service: "summit-migrate"})

	ctx := context.Background()
	store, err := app.OpenStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}
	defer store.Close(ctx)

	svc := service.NewRegistrationService(store.Registrations, store.IDs, log)

	if *export {
		err = runExport(ctx, svc, *file)
	} else {
		err = runImport(ctx, svc, *file, log)
	}
	if err != nil {
		_ = store.Close(ctx)
		log.Fatal().Err(err).Msg("migrate")
	}
}

func runImport(ctx context.Context, svc ports.RegistrationService, path string, log zerolog.Logger) error {
	if path == "" {
		return fmt.Errorf("-file is required for import")
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	regs, err := decodeRegistrations(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	n, err := svc.Import(ctx, regs)
	if err != nil {
		return err
	}
	log.Info().Int("count", n).Str("file", path).Msg("registrations imported")
	return nil
}

func runExport(ctx context.Context, svc ports.RegistrationService, path string) error {
	regs, err := svc.ListAll(ctx)
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return encodeRegistrations(out, regs)
}

func decodeRegistrations(r io.Reader) ([]domain.Registration, error) {
	var regs []domain.Registration
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&regs); err != nil {
		return nil, fmt.Errorf("decode registrations: %w", err)
	}
	return regs, nil
}

func encodeRegistrations(w io.Writer, regs []domain.Registration) error {
	if regs == nil {
		regs = []domain.Registration{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(regs)
}
