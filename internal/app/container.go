package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-shipment-bridge/internal/config"
	"service-shipment-bridge/internal/gateway/myparcel"
	"service-shipment-bridge/internal/gateway/sap"
	"service-shipment-bridge/internal/http/handlers"
	"service-shipment-bridge/internal/http/router"
	"service-shipment-bridge/internal/logx"
	"service-shipment-bridge/internal/metrics"
	"service-shipment-bridge/internal/service/shipment"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		logFatalf: log.Fatalf,
	}
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerGateways(container); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
	)
}

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config, logger logx.Logger) *sap.Client {
			return sap.NewClient(sap.Config{
				BaseURL:   cfg.SAP.BaseURL,
				CompanyDB: cfg.SAP.CompanyDB,
				Username:  cfg.SAP.Username,
				Password:  cfg.SAP.Password,
			}, cfg.ClientTimeout, logger)
		},
		func(cfg *config.Config, logger logx.Logger) *myparcel.Client {
			return myparcel.NewClient(myparcel.Config{
				BaseURL: cfg.MyParcel.BaseURL,
				APIKey:  cfg.MyParcel.APIKey,
			}, cfg.ClientTimeout, logger)
		},
	)
}

func newPipelineMetrics() shipment.Metrics {
	m := shipment.Metrics{
		Submitted:      metrics.NewShipmentsSubmittedTotal(),
		Rejected:       metrics.NewShipmentsRejectedTotal(),
		UpstreamErrors: metrics.NewUpstreamErrorsTotal(),
	}
	prometheus.MustRegister(m.Submitted, m.Rejected, m.UpstreamErrors)
	return m
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		newPipelineMetrics,
		func(
			erp *sap.Client,
			carrier *myparcel.Client,
			cfg *config.Config,
			logger logx.Logger,
			m shipment.Metrics,
		) *shipment.Service {
			return shipment.NewService(erp, carrier, cfg.PipelineTimeout, logger, m)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewShipmentUsecase,
		handlers.NewShipmentHandler,
		router.New,
		serverProvider,
	)
}
