package app

import (
	"log/slog"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/ecarehq/ecare_backend/config"
	"github.com/ecarehq/ecare_backend/internal/notify"
	"github.com/ecarehq/ecare_backend/internal/repo"
	"github.com/ecarehq/ecare_backend/internal/service/leave"
	"github.com/ecarehq/ecare_backend/internal/service/scheduling"
	"github.com/ecarehq/ecare_backend/internal/storage"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAppointmentStore,
		ProvideLeaveStore,
		ProvideDirectory,
		ProvideNotifier,
		ProvideSlotCatalog,
		ProvideLeaveService,
		ProvideSchedulingService,
	),
)

func ProvideAppointmentStore(client *repo.Client) scheduling.AppointmentStore {
	return storage.NewAppointmentStore(client)
}

func ProvideLeaveStore(client *repo.Client) leave.Store {
	return storage.NewLeaveStore(client)
}

func ProvideDirectory(client *repo.Client) scheduling.Directory {
	return storage.NewDirectory(client)
}

func ProvideNotifier(nc *nats.Conn, logger *slog.Logger) scheduling.Notifier {
	return notify.NewNatsNotifier(nc, logger)
}

func ProvideSlotCatalog(cfg *config.Config) (*scheduling.Catalog, error) {
	return scheduling.NewCatalog(cfg.Scheduling.TimeSlots...)
}

func ProvideLeaveService(store leave.Store, logger *slog.Logger) leave.Service {
	return leave.New(store, logger)
}

func ProvideSchedulingService(
	store scheduling.AppointmentStore,
	leaveSvc leave.Service,
	catalog *scheduling.Catalog,
	notifier scheduling.Notifier,
	logger *slog.Logger,
) scheduling.Service {
	return scheduling.New(store, leaveSvc, catalog, notifier, logger)
}
