package cmd

import (
	"context"
	"log/slog"
	"time"

	"school/internal/adapters/in/http"
	"school/internal/adapters/out/audit"
	"school/internal/adapters/out/postgres"
	"school/internal/adapters/out/postgres/actionlogrepo"
	"school/internal/adapters/out/postgres/courserepo"
	"school/internal/adapters/out/postgres/facultyrepo"
	"school/internal/adapters/out/postgres/grouprepo"
	"school/internal/adapters/out/postgres/personrepo"
	"school/internal/adapters/out/postgres/profilerepo"
	"school/internal/adapters/out/postgres/studentrepo"
	"school/internal/core/application/usecases/commands"
	"school/internal/core/application/usecases/facades"
	"school/internal/core/application/usecases/queries"
	"school/internal/jobs"
	"school/internal/pkg/command"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type CompositionRoot struct {
	cfg     Config
	gormDB  *gorm.DB
	logger  *slog.Logger
	actions *actionlogrepo.GormActionLogRepository
	facades *facades.Facades
}

// OpenDB connects to postgres and checks the connection.
func OpenDB(ctx context.Context, cfg DBConfig, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.NewSlogLogger(logger.With("component", "gorm"), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// NewCompositionRoot wires repositories, commands, facades and the audit
// executor. Spans and metrics go to the global otel providers.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	var pool *command.CompensationPool
	if cfg.Commands.CompensationWorkers > 0 {
		pool = command.NewCompensationPool(cfg.Commands.CompensationWorkers)
	}

	catalog, err := commands.NewCatalog(commands.Dependencies{
		Profiles:  profilerepo.NewGormProfileRepository(gormDB),
		Persons:   personrepo.NewGormAuthorityPersonRepository(gormDB),
		Students:  studentrepo.NewGormStudentRepository(gormDB),
		Courses:   courserepo.NewGormCourseRepository(gormDB),
		Faculties: facultyrepo.NewGormFacultyRepository(gormDB),
		Groups:    grouprepo.NewGormStudentsGroupRepository(gormDB),
		Tx:        postgres.NewGormTxScope(gormDB),
		Pool:      pool,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	actions := actionlogrepo.NewGormActionLogRepository(gormDB)
	executor, err := audit.NewExecutor(actions, otel.GetTracerProvider(), otel.GetMeterProvider(), logger)
	if err != nil {
		return nil, err
	}

	f, err := facades.New(catalog, executor, logger)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		cfg:     cfg,
		gormDB:  gormDB,
		logger:  logger,
		actions: actions,
		facades: f,
	}, nil
}

func (c *CompositionRoot) CreateGetCoursesWithoutStudentsQueryHandler() queries.GetCoursesWithoutStudentsQueryHandler {
	return queries.NewGetCoursesWithoutStudentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrphanProfilesQueryHandler() queries.GetOrphanProfilesQueryHandler {
	return queries.NewGetOrphanProfilesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateOrphanProfileCleanupJob() *jobs.OrphanProfileCleanupJob {
	return jobs.NewOrphanProfileCleanupJob(
		c.CreateGetOrphanProfilesQueryHandler(),
		c.facades.Profiles,
		c.cfg.Cleanup.Schedule,
		c.cfg.Cleanup.BatchSize,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateOrphanProfileCleanupJob())
}

func (c *CompositionRoot) CreateHTTPServer() (*echo.Echo, error) {
	server := http.NewServer(http.Handlers{
		Courses:                c.facades.Courses,
		Faculties:              c.facades.Faculties,
		StudentsGroups:         c.facades.StudentsGroups,
		Profiles:               c.facades.Profiles,
		AuthorityPersons:       c.facades.AuthorityPersons,
		Students:               c.facades.Students,
		CoursesWithoutStudents: c.CreateGetCoursesWithoutStudentsQueryHandler(),
		OrphanProfiles:         c.CreateGetOrphanProfilesQueryHandler(),
		Actions:                c.actions,
	}, c.logger)
	return http.NewEcho(server, c.logger)
}
