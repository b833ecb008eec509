package attendance

import (
	"github.com/golangid/attendo/config/env"
	"github.com/golangid/attendo/internal/modules/attendance/delivery/resthandler"
	"github.com/golangid/attendo/internal/modules/attendance/usecase"
	"github.com/golangid/attendo/pkg/codebase/factory/constant"
	"github.com/golangid/attendo/pkg/codebase/factory/dependency"
	"github.com/golangid/attendo/pkg/codebase/interfaces"
	"github.com/golangid/attendo/pkg/shared/repository"
)

// Module model
type Module struct {
	restHandler *resthandler.RestHandler
}

// NewModule module constructor
func NewModule(deps dependency.Dependency, repoMongo repository.RepoMongo) *Module {
	uc := usecase.NewAttendanceUsecase(deps, repoMongo, env.BaseEnv().JoinLockTimeout)

	var mod Module
	mod.restHandler = resthandler.NewRestHandler(uc, deps.GetValidator())
	return &mod
}

// RestHandler method
func (m *Module) RestHandler() interfaces.EchoRestHandler {
	return m.restHandler
}

// Name get module name
func (m *Module) Name() constant.Module {
	return constant.Attendance
}
