package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/mchandler/agency-site-api/internal/config"
	"github.com/mchandler/agency-site-api/internal/repository"
	"github.com/mchandler/agency-site-api/internal/repository/opensearch"
	"github.com/mchandler/agency-site-api/internal/repository/postgres"
)

type compositeRepository struct {
	repository.PostgresRepository
	searchRepo repository.SearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgres.NewPostgresRepository(dbConnections),
		searchRepo:         opensearch.NewRepository(osClient, osConfig),
	}
}

func (r *compositeRepository) Search() repository.SearchRepository {
	return r.searchRepo
}
