package service

import (
	"github.com/golangid/attendo/internal/modules/account"
	"github.com/golangid/attendo/internal/modules/attendance"
	"github.com/golangid/attendo/internal/modules/event"
	"github.com/golangid/attendo/internal/modules/feedback"
	"github.com/golangid/attendo/internal/modules/page"
	"github.com/golangid/attendo/internal/modules/resource"
	"github.com/golangid/attendo/pkg/codebase/factory"
	"github.com/golangid/attendo/pkg/codebase/factory/constant"
	"github.com/golangid/attendo/pkg/codebase/factory/dependency"
	"github.com/golangid/attendo/pkg/shared/repository"
)

// Service model
type Service struct {
	dependency dependency.Dependency
	modules    []factory.ModuleFactory
	name       constant.Service
}

// NewService in this service, page module is mounted last because it claims the static catch-all route
func NewService(deps dependency.Dependency, repoMongo repository.RepoMongo, publicDir string) factory.ServiceFactory {
	modules := []factory.ModuleFactory{
		account.NewModule(deps, repoMongo),
		event.NewModule(deps, repoMongo),
		attendance.NewModule(deps, repoMongo),
		resource.NewModule(deps, repoMongo),
		feedback.NewModule(deps, repoMongo),
		page.NewModule(publicDir),
	}

	return &Service{
		dependency: deps,
		modules:    modules,
		name:       constant.Attendo,
	}
}

// GetDependency method
func (s *Service) GetDependency() dependency.Dependency {
	return s.dependency
}

// GetModules method
func (s *Service) GetModules() []factory.ModuleFactory {
	return s.modules
}

// Name method
func (s *Service) Name() constant.Service {
	return s.name
}
