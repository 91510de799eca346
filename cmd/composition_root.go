package cmd

import (
	"context"
	"errors"
	"log/slog"

	httpin "checkout/internal/adapters/in/http"
	"checkout/internal/adapters/out/memory"
	"checkout/internal/adapters/out/postgres"
	"checkout/internal/adapters/out/postgres/sessionrepo"
	"checkout/internal/adapters/out/sink"
	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/application/usecases/queries"
	"checkout/internal/core/ports"
	"checkout/internal/jobs"
)

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	reader     ports.SessionReader
	orderSink  ports.OrderSink
	closers    []func() error
}

// NewCompositionRoot wires the adapters selected by configs. Close releases
// whatever it opened.
func NewCompositionRoot(ctx context.Context, configs Config, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		configs: configs,
		logger:  logger,
	}

	if err := c.initSessionStore(ctx); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	if err := c.initOrderSink(); err != nil {
		return nil, errors.Join(err, c.Close())
	}

	return c, nil
}

func (c *CompositionRoot) initSessionStore(ctx context.Context) error {
	switch c.configs.SessionStore {
	case SessionStorePostgres:
		if err := CreateDatabaseIfNotExists(ctx, c.configs); err != nil {
			return err
		}
		db, err := OpenDatabase(c.configs)
		if err != nil {
			return err
		}
		if sqlDB, sqlErr := db.DB(); sqlErr == nil {
			c.closers = append(c.closers, sqlDB.Close)
		}
		if err = Migrate(db); err != nil {
			return err
		}
		c.uowFactory = postgres.NewGormUnitOfWorkFactory(db, c.configs.PickupPoints)
		c.reader = sessionrepo.NewGormSessionReader(db)
	default:
		store := memory.NewSessionStore()
		c.uowFactory = memory.NewUnitOfWorkFactory(store, c.configs.PickupPoints)
		c.reader = store
	}

	c.logger.Info("Session store ready", "store", c.configs.SessionStore)
	return nil
}

func (c *CompositionRoot) initOrderSink() error {
	switch c.configs.OrderSink {
	case OrderSinkStan:
		conn, err := sink.DialStan(c.configs.StanClusterID, c.configs.StanClientID, c.configs.NatsURL)
		if err != nil {
			return err
		}
		stanSink := sink.NewStanSink(conn, c.configs.StanSubject, c.logger)
		c.closers = append(c.closers, stanSink.Close)
		c.orderSink = stanSink
	default:
		c.orderSink = sink.NewLogSink(c.logger)
	}

	c.logger.Info("Order sink ready", "sink", c.configs.OrderSink)
	return nil
}

// Close releases connections in reverse order of creation.
func (c *CompositionRoot) Close() error {
	var errList []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		errList = append(errList, c.closers[i]())
	}
	c.closers = nil
	return errors.Join(errList...)
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	var f commands.SessionUoWFactory = FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
	return f
}

func (c *CompositionRoot) CreateStartCheckoutCommandHandler() commands.StartCheckoutCommandHandler {
	return commands.NewStartCheckoutCommandHandler(c.sessionUoWFactory(), c.configs.PickupPoints)
}

func (c *CompositionRoot) CreateUpdateDraftFieldCommandHandler() commands.UpdateDraftFieldCommandHandler {
	return commands.NewUpdateDraftFieldCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceStepCommandHandler() commands.AdvanceStepCommandHandler {
	return commands.NewAdvanceStepCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateRetreatStepCommandHandler() commands.RetreatStepCommandHandler {
	return commands.NewRetreatStepCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateSetPickupSelectorCommandHandler() commands.SetPickupSelectorCommandHandler {
	return commands.NewSetPickupSelectorCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateSelectPickupPointCommandHandler() commands.SelectPickupPointCommandHandler {
	return commands.NewSelectPickupPointCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateFinalizeCheckoutCommandHandler() commands.FinalizeCheckoutCommandHandler {
	return commands.NewFinalizeCheckoutCommandHandler(c.sessionUoWFactory(), c.orderSink)
}

func (c *CompositionRoot) CreateExpireCheckoutsCommandHandler() commands.ExpireCheckoutsCommandHandler {
	return commands.NewExpireCheckoutsCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateGetCheckoutQueryHandler() queries.GetCheckoutQueryHandler {
	return queries.NewGetCheckoutQueryHandler(c.reader, c.configs.PickupPoints)
}

func (c *CompositionRoot) CreateGetPickupPointsQueryHandler() queries.GetPickupPointsQueryHandler {
	return queries.NewGetPickupPointsQueryHandler(c.configs.PickupPoints)
}

// CreateHTTPServer builds the API server over every use case.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		StartCheckout:     c.CreateStartCheckoutCommandHandler(),
		UpdateDraftField:  c.CreateUpdateDraftFieldCommandHandler(),
		AdvanceStep:       c.CreateAdvanceStepCommandHandler(),
		RetreatStep:       c.CreateRetreatStepCommandHandler(),
		SetPickupSelector: c.CreateSetPickupSelectorCommandHandler(),
		SelectPickupPoint: c.CreateSelectPickupPointCommandHandler(),
		FinalizeCheckout:  c.CreateFinalizeCheckoutCommandHandler(),
		GetCheckout:       c.CreateGetCheckoutQueryHandler(),
		GetPickupPoints:   c.CreateGetPickupPointsQueryHandler(),
	}, c.logger)
}

// CreateJobManager builds the scheduled jobs. A zero idle timeout disables
// session expiry.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	handler := c.CreateExpireCheckoutsCommandHandler()
	return jobs.NewJobManager(&handler, jobs.JobsConfig{
		SessionExpirySchedule: c.configs.SessionExpirySchedule,
		SessionIdleTimeout:    c.configs.SessionIdleTimeout,
	}, c.logger)
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}
