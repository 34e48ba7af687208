package postgres

import (
	"gorm.io/gorm"

	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/internal/repository"
)

type postgresRepository struct {
	writerDB         *gorm.DB
	readerDB         *gorm.DB
	tenantRepo       repository.TenantRepository
	locationRepo     repository.LocationRepository
	policyPageRepo   repository.PolicyPageRepository
	glossaryRepo     repository.GlossaryRepository
	pageMetaRepo     repository.PageMetaRepository
	blogRepo         repository.BlogRepository
	jobRepo          repository.JobRepository
	businessInfoRepo repository.BusinessInfoRepository
	submissionRepo   repository.SubmissionRepository
}

func NewPostgresRepository(dbConnections *config.DatabaseConnections) repository.PostgresRepository {
	writer, reader := dbConnections.Writer, dbConnections.Reader
	return &postgresRepository{
		writerDB:         writer,
		readerDB:         reader,
		tenantRepo:       NewTenantRepository(writer, reader),
		locationRepo:     NewLocationRepository(writer, reader),
		policyPageRepo:   NewPolicyPageRepository(writer, reader),
		glossaryRepo:     NewGlossaryRepository(writer, reader),
		pageMetaRepo:     NewPageMetaRepository(writer, reader),
		blogRepo:         NewBlogRepository(writer, reader),
		jobRepo:          NewJobRepository(writer, reader),
		businessInfoRepo: NewBusinessInfoRepository(writer, reader),
		submissionRepo:   NewSubmissionRepository(writer, reader),
	}
}

func (r *postgresRepository) Tenant() repository.TenantRepository {
	return r.tenantRepo
}

func (r *postgresRepository) Location() repository.LocationRepository {
	return r.locationRepo
}

func (r *postgresRepository) PolicyPage() repository.PolicyPageRepository {
	return r.policyPageRepo
}

func (r *postgresRepository) Glossary() repository.GlossaryRepository {
	return r.glossaryRepo
}

func (r *postgresRepository) PageMeta() repository.PageMetaRepository {
	return r.pageMetaRepo
}

func (r *postgresRepository) Blog() repository.BlogRepository {
	return r.blogRepo
}

func (r *postgresRepository) Job() repository.JobRepository {
	return r.jobRepo
}

func (r *postgresRepository) BusinessInfo() repository.BusinessInfoRepository {
	return r.businessInfoRepo
}

func (r *postgresRepository) Submission() repository.SubmissionRepository {
	return r.submissionRepo
}
