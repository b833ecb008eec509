package page

import (
	"github.com/golangid/attendo/internal/modules/page/delivery/resthandler"
	"github.com/golangid/attendo/pkg/codebase/factory/constant"
	"github.com/golangid/attendo/pkg/codebase/interfaces"
)

// Module model, serve html pages of frontend
type Module struct {
	restHandler *resthandler.RestHandler
}

// NewModule module constructor
func NewModule(publicDir string) *Module {
	var mod Module
	mod.restHandler = resthandler.NewRestHandler(publicDir)
	return &mod
}

// RestHandler method
func (m *Module) RestHandler() interfaces.EchoRestHandler {
	return m.restHandler
}

// Name get module name
func (m *Module) Name() constant.Module {
	return constant.Page
}
