package main

import (
	"context"

	"alqualis/config"
	"alqualis/database"
	importerSvc "alqualis/pkg/importer/service"
	importerSvcImp "alqualis/pkg/importer/serviceImp"
	"alqualis/pkg/metrics"
	plantationRepoImp "alqualis/pkg/plantation/repositoryImp"
	plantationSvc "alqualis/pkg/plantation/service"
	plantationSvcImp "alqualis/pkg/plantation/serviceImp"
	producerRepoImp "alqualis/pkg/producer/repositoryImp"
	producerSvc "alqualis/pkg/producer/service"
	producerSvcImp "alqualis/pkg/producer/serviceImp"
	refRepo "alqualis/pkg/reference/repository"
	refRepoImp "alqualis/pkg/reference/repositoryImp"
	reportRepo "alqualis/pkg/report/repository"
	reportRepoImp "alqualis/pkg/report/repositoryImp"
)

type app struct {
	cfg         config.AppConfig
	store       *database.Store
	metrics     *metrics.Collectors
	refs        refRepo.ReferenceRepository
	producers   producerSvc.ProducerService
	plantations plantationSvc.PlantationService
	reports     reportRepo.ReportRepository
	importer    importerSvc.ImporterService
}

// openApp opens the store, makes sure the schema exists and wires every
// repository and service on top of it.
func openApp(ctx context.Context, cfg config.AppConfig, seed bool) (*app, error) {
	st, err := database.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := st.InitializeSchema(ctx, seed); err != nil {
		_ = st.Close()
		return nil, err
	}

	m := metrics.New()
	refs := refRepoImp.New(st.DB)
	producers := producerSvcImp.NewProducerService(producerRepoImp.New(st.DB))
	plantations := plantationSvcImp.NewPlantationService(plantationRepoImp.New(st.DB))
	return &app{
		cfg:         cfg,
		store:       st,
		metrics:     m,
		refs:        refs,
		producers:   producers,
		plantations: plantations,
		reports:     reportRepoImp.New(st.DB),
		importer:    importerSvcImp.New(refs, producers, plantations, m),
	}, nil
}

func (a *app) Close() error { return a.store.Close() }
