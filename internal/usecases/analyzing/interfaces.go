package analyzing

import (
	"github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/creative-performance-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/creative-performance-api/internal/domain"
)

// InsightSource é a fatia do integrador Meta que a análise consome.
type InsightSource interface {
	ActiveTargetCampaigns(accountID string, targetNames []string) ([]metadomain.Campaign, error)
	CollectAnalysisInput(accountID string, campaigns []metadomain.Campaign, filters *domain.InsightFilters) (*meta.AnalysisInput, error)
}

// SourceFactory cria um InsightSource com a sessão do perfil. Cada perfil
// tem o seu token; nada de sessão global compartilhada.
type SourceFactory func(accessToken string) InsightSource

// Analyzer executa a análise completa de um perfil de cliente.
type Analyzer interface {
	Analyze(profile *domain.ClientProfile) (*domain.AnalysisReport, error)
}
