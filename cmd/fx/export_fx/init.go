package export_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"voyagemind/internal/api/controllers"
	"voyagemind/internal/infra"
	"voyagemind/internal/repositories"
	"voyagemind/internal/services"
	mem "voyagemind/pkg/memcache"
)

var Module = fx.Provide(
	ProvideShareStore,
	ProvideExportService,
	ProvideExportController,
)

// ProvideShareStore picks the Postgres-backed store when POSTGRES_URL is
// configured, the in-memory store otherwise. Both enforce the same 7-day
// read-time expiry.
func ProvideShareStore(lc fx.Lifecycle) (mem.ShareStore, error) {
	if os.Getenv("POSTGRES_URL") == "" {
		log.Println("POSTGRES_URL not set, using in-memory share store")
		return mem.NewShareLinks(), nil
	}

	db := infra.InitPostgresql()
	repo, err := repositories.NewShareRepository(db)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	log.Println("Using Postgres share store")
	return repo, nil
}

func ProvideExportService(store mem.ShareStore) services.ExportServiceInterface {
	return services.NewExportService(store)
}

func ProvideExportController(exportService services.ExportServiceInterface) *controllers.ExportController {
	return controllers.NewExportController(exportService)
}
