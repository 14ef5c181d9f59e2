package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/game/status"
)

// StatusTableName is the Lua global that status effect scripts populate.
const StatusTableName = "status_effects"

// StatusScripts implements status.Handlers from a Lua script defining
//
//	status_effects = {
//	  strength = {
//	    apply_passive = function(actor, intensity) ... end,
//	    remove_passive = function(actor) ... end,
//	  },
//	}
//
// Entries are keyed by status name. StatusScripts is safe for concurrent use;
// calls into the VM are serialized.
type StatusScripts struct {
	sandbox  *Sandbox
	handlers map[status.Type]*scriptHandler
	logger   *zap.Logger
}

// LoadStatusScripts executes the script at path in a fresh sandbox and binds
// every recognised entry of the status_effects table.
//
// Precondition: path names a readable Lua file; instLimit >= 0 (0 = DefaultInstructionLimit).
// Postcondition: returns an error when the script fails to run or does not
// define status_effects as a table. Unknown status names are skipped with a warning.
func LoadStatusScripts(path string, instLimit int, logger *zap.Logger) (*StatusScripts, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &StatusScripts{
		sandbox:  NewSandbox(instLimit),
		handlers: make(map[status.Type]*scriptHandler),
		logger:   logger,
	}
	RegisterModules(s.sandbox.L, logger)

	if err := s.sandbox.DoFile(path); err != nil {
		s.sandbox.Close()
		return nil, err
	}

	tbl, ok := s.sandbox.L.GetGlobal(StatusTableName).(*lua.LTable)
	if !ok {
		s.sandbox.Close()
		return nil, fmt.Errorf("scripting: %q does not define a %s table", path, StatusTableName)
	}
	tbl.ForEach(func(key, value lua.LValue) {
		name, isString := key.(lua.LString)
		t, known := status.ParseType(string(name))
		if !isString || !known {
			logger.Warn("ignoring status effect script for unknown status", zap.String("key", key.String()))
			return
		}
		entry, isTable := value.(*lua.LTable)
		if !isTable {
			logger.Warn("status effect script entry is not a table", zap.Stringer("status", t))
			return
		}
		h := &scriptHandler{
			owner:  s,
			status: t,
			apply:  asFunction(entry.RawGetString("apply_passive")),
			remove: asFunction(entry.RawGetString("remove_passive")),
		}
		if h.apply == nil && h.remove == nil {
			logger.Warn("status effect script defines no functions", zap.Stringer("status", t))
		}
		s.handlers[t] = h
	})
	return s, nil
}

// Handler returns the scripted handler for t.
func (s *StatusScripts) Handler(t status.Type) (status.PassiveHandler, bool) {
	h, ok := s.handlers[t]
	if !ok {
		return nil, false
	}
	return h, true
}

// Types returns the status types with a script entry, in Type order.
func (s *StatusScripts) Types() []status.Type {
	var out []status.Type
	for t := status.Type(0); t < status.Total; t++ {
		if _, ok := s.handlers[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Close releases the Lua VM. Handlers must not be used afterwards.
func (s *StatusScripts) Close() { s.sandbox.Close() }

func asFunction(v lua.LValue) *lua.LFunction {
	fn, _ := v.(*lua.LFunction)
	return fn
}

type scriptHandler struct {
	owner  *StatusScripts
	status status.Type
	apply  *lua.LFunction
	remove *lua.LFunction
}

// ApplyPassive calls apply_passive(actor, intensity).
func (h *scriptHandler) ApplyPassive(target status.Target, intensity status.Intensity) error {
	if h.apply == nil {
		return status.ErrMissingFunction
	}
	return h.call("apply_passive", h.apply, target, lua.LNumber(intensity))
}

// RemovePassive calls remove_passive(actor).
func (h *scriptHandler) RemovePassive(target status.Target) error {
	if h.remove == nil {
		return status.ErrMissingFunction
	}
	return h.call("remove_passive", h.remove, target)
}

func (h *scriptHandler) call(name string, fn *lua.LFunction, target status.Target, extra ...lua.LValue) error {
	err := h.owner.sandbox.Do(func(L *lua.LState) error {
		args := append([]lua.LValue{targetTable(L, target)}, extra...)
		return L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, args...)
	})
	if err != nil {
		return fmt.Errorf("scripting: %s %s for actor %d: %w", h.status, name, target.ActorID(), err)
	}
	return nil
}
