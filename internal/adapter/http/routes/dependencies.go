package routes

import (
	"context"
	"log"

	"gestao_backoffice/internal/adapter/persistence/memory"
	"gestao_backoffice/internal/adapter/persistence/repository"
	"gestao_backoffice/internal/infrastructure/config"
	"gestao_backoffice/internal/infrastructure/database"
	"gestao_backoffice/internal/infrastructure/metrics"
	"gestao_backoffice/internal/infrastructure/notify"
	"gestao_backoffice/internal/usecase"
	"gestao_backoffice/internal/usecase/interfaces"
	"gestao_backoffice/internal/workflow"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Dependencies are the use cases served over HTTP plus what must be released on
// shutdown.
type Dependencies struct {
	Contracts usecase.IContractUseCase
	Overtime  usecase.IOvertimeUseCase
	Accounts  usecase.IAccountUseCase
	Gatherer  prometheus.Gatherer

	publisher *notify.SNSPublisher
}

// Close waits for in-flight SNS publishes.
func (d *Dependencies) Close() {
	if d.publisher != nil {
		d.publisher.Wait()
	}
}

type repositories struct {
	contracts interfaces.IContractRepository
	overtime  interfaces.IOvertimeRepository
	accounts  interfaces.IAccountRepository
	audit     interfaces.IAuditRecordRepository
}

func buildDependencies(ctx context.Context, cfg config.Config) (*Dependencies, error) {
	var awsCfg *aws.Config
	awsConfig := func() (aws.Config, error) {
		if awsCfg == nil {
			c, err := database.NewAWSConfig(ctx, cfg.AWS)
			if err != nil {
				return aws.Config{}, err
			}
			awsCfg = &c
		}
		return *awsCfg, nil
	}

	var repos repositories
	switch cfg.PersistenceDriver {
	case config.DriverMemory:
		log.Printf("[wiring] persistence=memory, data is lost on restart")
		audit := memory.NewAuditLog()
		repos = repositories{
			contracts: memory.NewContractStore(audit),
			overtime:  memory.NewOvertimeStore(audit),
			accounts:  memory.NewAccountStore(audit),
			audit:     audit,
		}
	default:
		c, err := awsConfig()
		if err != nil {
			return nil, err
		}
		ddb := database.ConnectDynamoDB(c)
		repos = repositories{
			contracts: repository.NewContractDynamoRepository(ddb, cfg.DynamoDB),
			overtime:  repository.NewOvertimeDynamoRepository(ddb, cfg.DynamoDB),
			accounts:  repository.NewAccountDynamoRepository(ddb, cfg.DynamoDB),
			audit:     repository.NewAuditRecordDynamoRepository(ddb, cfg.DynamoDB),
		}
	}

	deps := &Dependencies{}
	sinks := notify.Multi{notify.LogSink{}, notify.RequestSink{}}
	if cfg.NotifyTopicARN != "" {
		c, err := awsConfig()
		if err != nil {
			return nil, err
		}
		deps.publisher = notify.NewSNSPublisher(notify.ConnectSNS(c), cfg.NotifyTopicARN)
		sinks = append(sinks, deps.publisher)
		log.Printf("[wiring] sns notifications enabled topic=%s", cfg.NotifyTopicARN)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	observer := metrics.New(reg)
	deps.Gatherer = reg

	clock := workflow.NewClock(cfg.Location)

	var err error
	if deps.Contracts, err = usecase.NewContractUseCase(repos.contracts, repos.audit, sinks, clock, observer); err != nil {
		return nil, err
	}
	if deps.Overtime, err = usecase.NewOvertimeUseCase(repos.overtime, repos.audit, sinks, clock, observer); err != nil {
		return nil, err
	}
	if deps.Accounts, err = usecase.NewAccountUseCase(repos.accounts, repos.audit, sinks, clock, observer); err != nil {
		return nil, err
	}
	return deps, nil
}
