package app

import (
	"database/sql"

	"go-hrms/internal/config"
	"go-hrms/internal/department"
	"go-hrms/internal/employee"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/metrics"
	"go-hrms/internal/notification"
	"go-hrms/internal/rbac"
	"go-hrms/internal/report"
	"go-hrms/internal/request"
	"go-hrms/internal/salary"
	"go-hrms/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Infra adalah dependency bersama yang dibuat sekali per proses.
type Infra struct {
	Config  *config.Config
	DB      *sql.DB
	GormDB  *gorm.DB
	Redis   *redis.Client
	Metrics *metrics.Collector
	Logger  *zap.Logger
}

func registerModules(api *gin.RouterGroup, infra Infra) error {
	cfg := infra.Config
	logger := infra.Logger

	// --- Repositories ---
	counterRepo := counter.NewRepository(infra.GormDB)
	departmentRepo := department.NewRepository(infra.GormDB)
	employeeRepo := employee.NewRepository(infra.GormDB)
	notificationRepo := notification.NewRepository(infra.GormDB)
	outboxRepo := kafka.NewOutboxRepository(infra.DB)
	requestRepo := request.NewRepository(infra.GormDB)
	salaryRepo := salary.NewRepository(infra.GormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, cfg.RBAC.Policies, logger)
	if err != nil {
		return err
	}

	chain, err := request.ChainFromConfig(cfg.Approval.Chain)
	if err != nil {
		return err
	}

	// --- Services ---
	departmentService := department.NewService(infra.DB, departmentRepo, infra.Redis)
	employeeService := employee.NewServiceWithOutbox(infra.DB, employeeRepo, counterRepo, outboxRepo, infra.Redis, logger)
	notificationService := notification.NewService(notificationRepo, infra.Metrics, logger)
	requestService := request.NewServiceWithOutbox(infra.DB, requestRepo, chain, outboxRepo, infra.Metrics, logger)
	salaryService := salary.NewService(infra.DB, salaryRepo, employeeRepo, requestRepo, salary.Options{
		PeriodPolicy: cfg.Salary.PeriodPolicy,
		Outbox:       outboxRepo,
		Metrics:      infra.Metrics,
	}, logger)
	reportService := report.NewService(requestRepo, salaryRepo, logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	notificationHandler := notification.NewHandler(notificationService)
	rbacHandler := rbac.NewHandler(rbacService)
	reportHandler := report.NewHandler(reportService)
	requestHandler := request.NewHandler(requestService, logger)
	salaryHandler := salary.NewHandlerWithRedis(salaryService, infra.Redis, logger)

	// --- Routes Registration ---
	department.RegisterRoutes(api, departmentHandler, rbacService)
	employee.RegisterRoutes(api, employeeHandler, rbacService)
	notification.RegisterRoutes(api, notificationHandler)
	rbac.RegisterRoutes(api, rbacHandler)
	report.RegisterRoutes(api, reportHandler, rbacService)
	request.RegisterRoutes(api, requestHandler)
	salary.RegisterRoutes(api, salaryHandler, rbacService, infra.Redis)

	logger.Info("modules registered", zap.String("approval_chain", chain.String()))
	return nil
}
