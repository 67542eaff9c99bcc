package checkout

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/checkout/delivery/http"
	"github.com/tair/storefront/internal/checkout/domain"
	"github.com/tair/storefront/internal/checkout/events"
	"github.com/tair/storefront/internal/checkout/repository"
	"github.com/tair/storefront/internal/checkout/usecase/command"
	"github.com/tair/storefront/internal/checkout/usecase/query"
	"github.com/tair/storefront/kafka"
)

// ProvideTransactionRepository provides the gorm transaction repository
func ProvideTransactionRepository(db *gorm.DB) domain.TransactionRepository {
	return repository.NewGormTransactionRepository(db)
}

// ProvideUnitOfWork provides the gorm unit of work
func ProvideUnitOfWork(db *gorm.DB) domain.UnitOfWork {
	return repository.NewGormUnitOfWork(db)
}

// ProvideEventPublisher publishes through Kafka when a publisher is configured
func ProvideEventPublisher(pub *kafka.Publisher) domain.EventPublisher {
	if pub == nil {
		return events.NoopEventPublisher{}
	}
	return events.NewKafkaEventPublisher(pub)
}

var RepositorySet = wire.NewSet(
	ProvideTransactionRepository,
	ProvideUnitOfWork,
	ProvideEventPublisher,
)

var CommandHandlerSet = wire.NewSet(
	command.NewCreateTransactionHandler,
)

var QueryHandlerSet = wire.NewSet(
	query.NewGetTransactionHandler,
	query.NewListTransactionsHandler,
)

var ProviderSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
	http.NewTransactionHandler,
)
