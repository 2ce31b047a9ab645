// Package modules lists the practice feature modules.
package modules

import (
	module "github.com/louisbranch/practice.space/internal/services/practice/module"
	"github.com/louisbranch/practice.space/internal/services/practice/modules/health"
	"github.com/louisbranch/practice.space/internal/services/practice/modules/home"
	"github.com/louisbranch/practice.space/internal/services/practice/modules/problems"
)

// DefaultModules returns modules mounted without a session guard.
func DefaultModules() []module.Module {
	return []module.Module{
		home.New(),
		health.New(),
	}
}

// DefaultStatefulModules returns modules that mutate session state.
func DefaultStatefulModules() []module.Module {
	return []module.Module{
		problems.New(),
	}
}
