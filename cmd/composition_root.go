package cmd

import (
	"log/slog"
	"net/http"
	"time"

	"fulfillment/internal/adapters/out/courierquotes"
	"fulfillment/internal/adapters/out/docservice"
	"fulfillment/internal/adapters/out/memstore"
	"fulfillment/internal/adapters/out/orderclient"
	"fulfillment/internal/adapters/out/pdf"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
)

type CompositionRoot struct {
	sessions  ports.SessionRepository
	orders    ports.OrderClient
	quotes    ports.CourierQuotesClient
	manifests ports.ManifestGenerator
	labels    ports.LabelGenerator
	config    Config
	logger    *slog.Logger
}

// NewCompositionRoot wires the adapters selected by the configuration. When a
// document service URL is configured, manifests and labels are generated
// remotely; otherwise they are rendered locally as PDF files.
func NewCompositionRoot(config Config, logger *slog.Logger) (CompositionRoot, error) {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	orders, err := orderclient.NewClient(config.OrderServiceURL, httpClient)
	if err != nil {
		return CompositionRoot{}, err
	}

	quotes, err := courierquotes.NewClient(config.CourierServiceURL, httpClient)
	if err != nil {
		return CompositionRoot{}, err
	}

	var (
		manifests ports.ManifestGenerator
		labels    ports.LabelGenerator
	)
	if config.DocServiceURL != "" {
		docs, docsErr := docservice.NewClient(config.DocServiceURL, httpClient)
		if docsErr != nil {
			return CompositionRoot{}, docsErr
		}
		manifests, labels = docs, docs
	} else {
		generator, pdfErr := pdf.NewGenerator(config.ManifestOutputDir)
		if pdfErr != nil {
			return CompositionRoot{}, pdfErr
		}
		manifests, labels = generator, generator
	}

	return CompositionRoot{
		sessions:  memstore.NewSessionRepository(),
		orders:    orders,
		quotes:    quotes,
		manifests: manifests,
		labels:    labels,
		config:    config,
		logger:    logger,
	}, nil
}

func (c *CompositionRoot) CreateLoadOrderCommandHandler() commands.LoadOrderCommandHandler {
	return commands.NewLoadOrderCommandHandler(c.orders, c.sessions)
}

func (c *CompositionRoot) CreateChooseSupplierCommandHandler() commands.ChooseSupplierCommandHandler {
	return commands.NewChooseSupplierCommandHandler(c.sessions, c.quotes)
}

func (c *CompositionRoot) CreateChooseCourierCommandHandler() commands.ChooseCourierCommandHandler {
	return commands.NewChooseCourierCommandHandler(c.sessions)
}

func (c *CompositionRoot) CreatePrefetchCouriersCommandHandler() commands.PrefetchCouriersCommandHandler {
	return commands.NewPrefetchCouriersCommandHandler(c.sessions, c.quotes)
}

func (c *CompositionRoot) CreateGenerateManifestsCommandHandler() commands.GenerateManifestsCommandHandler {
	return commands.NewGenerateManifestsCommandHandler(c.sessions, c.manifests, c.labels, c.logger)
}

func (c *CompositionRoot) CreateGetFulfillmentStatusQueryHandler() queries.GetFulfillmentStatusQueryHandler {
	return queries.NewGetFulfillmentStatusQueryHandler(c.sessions)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.config.SessionTTL, c.logger)
}
