package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/cory-johannsen/actorcore/internal/game/attribute"
	"github.com/cory-johannsen/actorcore/internal/game/status"
)

// RegisterModules registers the engine.* Lua tables into L.
//
// Precondition: L must be from NewSandboxedState; logger must be non-nil.
// Postcondition: engine.log.{debug,info,warn,error} are defined in L.
func RegisterModules(L *lua.LState, logger *zap.Logger) {
	engine := L.NewTable()
	logTbl := L.NewTable()
	levels := map[string]func(string, ...zap.Field){
		"debug": logger.Debug,
		"info":  logger.Info,
		"warn":  logger.Warn,
		"error": logger.Error,
	}
	for name, fn := range levels {
		fn := fn
		L.SetField(logTbl, name, L.NewFunction(func(L *lua.LState) int {
			fn(L.CheckString(1), zap.String("source", "lua"))
			return 0
		}))
	}
	L.SetField(engine, "log", logTbl)
	L.SetGlobal("engine", engine)
}

// targetTable exposes target to Lua as a table with colon-call methods:
//
//	actor.id, actor.name
//	actor:stat_base(name), actor:stat_modifier(name), actor:set_stat_modifier(name, v)
//	actor:elemental_base(name), actor:elemental_modifier(name), actor:set_elemental_modifier(name, v)
//
// Unknown stat or element names raise a Lua error.
func targetTable(L *lua.LState, target status.Target) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "id", lua.LNumber(target.ActorID()))
	L.SetField(tbl, "name", lua.LString(target.ActorName()))

	checkStat := func(L *lua.LState) attribute.Stat {
		name := L.CheckString(2)
		s, ok := attribute.ParseStat(name)
		if !ok {
			L.ArgError(2, "unknown stat "+name)
		}
		return s
	}
	checkElement := func(L *lua.LState) attribute.Element {
		name := L.CheckString(2)
		e, ok := attribute.ParseElement(name)
		if !ok {
			L.ArgError(2, "unknown element "+name)
		}
		return e
	}

	L.SetField(tbl, "stat_base", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(target.StatBase(checkStat(L))))
		return 1
	}))
	L.SetField(tbl, "stat_modifier", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(target.StatModifier(checkStat(L))))
		return 1
	}))
	L.SetField(tbl, "set_stat_modifier", L.NewFunction(func(L *lua.LState) int {
		s := checkStat(L)
		target.SetStatModifier(s, float32(L.CheckNumber(3)))
		return 0
	}))
	L.SetField(tbl, "elemental_base", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(target.ElementalBase(checkElement(L))))
		return 1
	}))
	L.SetField(tbl, "elemental_modifier", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(target.ElementalModifier(checkElement(L))))
		return 1
	}))
	L.SetField(tbl, "set_elemental_modifier", L.NewFunction(func(L *lua.LState) int {
		e := checkElement(L)
		target.SetElementalModifier(e, float32(L.CheckNumber(3)))
		return 0
	}))
	return tbl
}
