package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	authclient "github.com/you-humble/paybridge/internal/client/auth"
	"github.com/you-humble/paybridge/internal/config"
	"github.com/you-humble/paybridge/internal/converter"
	"github.com/you-humble/paybridge/internal/migrator"
	"github.com/you-humble/paybridge/internal/model"
	"github.com/you-humble/paybridge/internal/moneta"
	atrepository "github.com/you-humble/paybridge/internal/repository/invoice/airtable"
	pgrepository "github.com/you-humble/paybridge/internal/repository/invoice/postgres"
	invservice "github.com/you-humble/paybridge/internal/service/invoice"
	ntfservice "github.com/you-humble/paybridge/internal/service/notification"
	invproducer "github.com/you-humble/paybridge/internal/service/producer/invoice"
	invhttp "github.com/you-humble/paybridge/internal/transport/http/invoice/v1"
	whhttp "github.com/you-humble/paybridge/internal/transport/http/webhook/v1"
	"github.com/you-humble/paybridge/platform/closer"
	"github.com/you-humble/paybridge/platform/kafka"
	"github.com/you-humble/paybridge/platform/kafka/producer"
	"github.com/you-humble/paybridge/platform/logger"
)

type Converter interface {
	InvoicePaidToPayload(m model.InvoicePaid) ([]byte, error)
}

type InvoiceRepository interface {
	ntfservice.InvoiceRepository
	invservice.InvoiceLister
}

type WebhookHandler interface {
	Notify(w http.ResponseWriter, r *http.Request)
}

type InvoiceHandler interface {
	Index(w http.ResponseWriter, r *http.Request)
}

type di struct {
	cfg *config.Config

	airtableClient *http.Client
	dbPool         *pgxpool.Pool
	migrator       *migrator.Migrator
	repository     InvoiceRepository

	verifier invservice.TokenVerifier

	syncProducer        sarama.SyncProducer
	invoicePaidProducer kafka.Producer
	invoiceProducer     ntfservice.InvoicePaidSender

	conv Converter

	notificationService whhttp.NotificationService
	invoiceService      invhttp.InvoiceService

	responder      *moneta.Responder
	webhookHandler WebhookHandler
	invoiceHandler InvoiceHandler

	router *chi.Mux
}

func NewDI(cfg *config.Config) *di { return &di{cfg: cfg} }

func (d *di) AirtableClient(_ context.Context) *http.Client {
	if d.airtableClient == nil {
		d.airtableClient = &http.Client{Timeout: d.cfg.Airtable.Timeout()}

		closer.AddNamed("Airtable client",
			func(ctx context.Context) error {
				d.airtableClient.CloseIdleConnections()
				return nil
			})
	}

	return d.airtableClient
}

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pool, err := pgxpool.New(ctx, d.cfg.Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			d.cfg.Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) InvoiceRepository(ctx context.Context) InvoiceRepository {
	if d.repository == nil {
		switch d.cfg.Store.Driver() {
		case config.StoreDriverPostgres:
			d.repository = pgrepository.NewInvoiceRepository(d.DBPool(ctx))
		default:
			at := d.cfg.Airtable
			d.repository = atrepository.NewInvoiceRepository(
				d.AirtableClient(ctx),
				atrepository.Config{
					APIURL:     at.APIURL(),
					APIKey:     at.APIKey(),
					BaseID:     at.BaseID(),
					Table:      at.TableName(),
					OwnerField: at.OwnerField(),
					EmailField: at.EmailField(),
				},
			)
		}
	}

	return d.repository
}

func (d *di) TokenVerifier(_ context.Context) invservice.TokenVerifier {
	if d.verifier == nil {
		v, err := authclient.NewVerifier(d.cfg.Auth.PublicKeyPEM())
		if err != nil {
			panic(fmt.Sprintf("failed to create token verifier: %v\n", err))
		}

		d.verifier = v
	}

	return d.verifier
}

func (d *di) KafkaConverter(_ context.Context) Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		p, err := sarama.NewSyncProducer(
			d.cfg.Kafka.Brokers(),
			d.cfg.Kafka.InvoicePaidProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) InvoicePaidProducer(ctx context.Context) kafka.Producer {
	if d.invoicePaidProducer == nil {
		d.invoicePaidProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			d.cfg.Kafka.InvoicePaidTopic(),
			logger.L(),
		)
	}

	return d.invoicePaidProducer
}

func (d *di) InvoiceProducer(ctx context.Context) ntfservice.InvoicePaidSender {
	if d.invoiceProducer == nil {
		if !d.cfg.Kafka.Enabled() {
			d.invoiceProducer = invproducer.NewNopSender()
			return d.invoiceProducer
		}

		d.invoiceProducer = invproducer.NewInvoiceProducer(
			d.InvoicePaidProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.invoiceProducer
}

func (d *di) NotificationService(ctx context.Context) whhttp.NotificationService {
	if d.notificationService == nil {
		d.notificationService = ntfservice.NewNotificationService(
			d.InvoiceRepository(ctx),
			d.InvoiceProducer(ctx),
			d.cfg.Moneta.MerchantID(),
			d.cfg.Moneta.IntegrityCode(),
			d.cfg.Server.StoreReadTimeout(),
			d.cfg.Server.StoreWriteTimeout(),
		)
	}

	return d.notificationService
}

func (d *di) InvoiceService(ctx context.Context) invhttp.InvoiceService {
	if d.invoiceService == nil {
		d.invoiceService = invservice.NewInvoiceService(
			d.InvoiceRepository(ctx),
			d.TokenVerifier(ctx),
			d.cfg.Server.StoreReadTimeout(),
		)
	}

	return d.invoiceService
}

func (d *di) Responder(_ context.Context) *moneta.Responder {
	if d.responder == nil {
		d.responder = moneta.NewResponder(
			d.cfg.Moneta.MerchantID(),
			d.cfg.Moneta.IntegrityCode(),
			moneta.ReceiptItem{
				Name:   d.cfg.Moneta.ReceiptItemName(),
				VATTag: d.cfg.Moneta.ReceiptVATTag(),
			},
		)
	}

	return d.responder
}

func (d *di) WebhookHandler(ctx context.Context) WebhookHandler {
	if d.webhookHandler == nil {
		d.webhookHandler = whhttp.NewWebhookHandler(
			d.NotificationService(ctx),
			d.Responder(ctx),
		)
	}

	return d.webhookHandler
}

func (d *di) InvoiceHandler(ctx context.Context) InvoiceHandler {
	if d.invoiceHandler == nil {
		d.invoiceHandler = invhttp.NewInvoiceHandler(
			d.InvoiceService(ctx),
			d.cfg.Auth.ServiceURL(),
			d.cfg.Auth.TokenCookie(),
		)
	}

	return d.invoiceHandler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
