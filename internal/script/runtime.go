// Package script exposes the time functions to Lua scripts.
//
// Scripts see four globals:
//
//	saveTime(identifier [, player])
//	getTime()                         -> time
//	loadTime(identifier [, player])   -> time or nil
//	compareTimes(a, b, unit)          -> number
//
// A player is a name string or a table with a nameTag field. A time is a
// table with milliseconds, seconds, minutes, hours, days, weeks and years.
package script

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/Shopify/go-lua"

	"github.com/mcoot/timestamper/internal/model"
	"github.com/mcoot/timestamper/internal/services/timestamp"
)

// Runtime runs Lua scripts against a timestamp service
type Runtime struct {
	service *timestamp.Service
	logger  *slog.Logger
}

// New creates a new Runtime
func New(service *timestamp.Service, logger *slog.Logger) *Runtime {
	return &Runtime{
		service: service,
		logger:  logger,
	}
}

// NewState returns a Lua state with the standard libraries and the time
// functions registered. Calls made by the state use ctx.
func (r *Runtime) NewState(ctx context.Context) *lua.State {
	state := lua.NewState()
	lua.OpenLibraries(state)

	b := &bindings{ctx: ctx, service: r.service, logger: r.logger}
	state.Register("saveTime", b.saveTime)
	state.Register("getTime", b.getTime)
	state.Register("loadTime", b.loadTime)
	state.Register("compareTimes", b.compareTimes)
	return state
}

// RunString executes a Lua chunk
func (r *Runtime) RunString(ctx context.Context, source string) error {
	if err := lua.DoString(r.NewState(ctx), source); err != nil {
		return fmt.Errorf("run lua: %w", err)
	}
	return nil
}

// RunFile executes a Lua file
func (r *Runtime) RunFile(ctx context.Context, path string) error {
	r.logger.Debug("running script", slog.String("path", path))
	if err := lua.DoFile(r.NewState(ctx), path); err != nil {
		return fmt.Errorf("run lua %s: %w", path, err)
	}
	return nil
}

type bindings struct {
	ctx     context.Context
	service *timestamp.Service
	logger  *slog.Logger
}

// saveTime never raises; a failed save is only logged
func (b *bindings) saveTime(state *lua.State) int {
	identifier := lua.CheckString(state, 1)
	player := checkPlayer(state, 2)
	_ = b.service.SaveTime(b.ctx, identifier, player)
	return 0
}

func (b *bindings) getTime(state *lua.State) int {
	pushTimeItem(state, b.service.GetTime())
	return 1
}

func (b *bindings) loadTime(state *lua.State) int {
	identifier := lua.CheckString(state, 1)
	player := checkPlayer(state, 2)

	item, ok := b.service.LoadTime(b.ctx, identifier, player)
	if !ok {
		state.PushNil()
		return 1
	}
	pushTimeItem(state, item)
	return 1
}

func (b *bindings) compareTimes(state *lua.State) int {
	lua.CheckType(state, 1, lua.TypeTable)
	lua.CheckType(state, 2, lua.TypeTable)
	unit, err := model.ParseTimeUnit(lua.CheckString(state, 3))
	if err != nil {
		lua.ArgumentError(state, 3, err.Error())
		return 0
	}

	a := checkUnitField(state, 1, unit)
	c := checkUnitField(state, 2, unit)
	state.PushNumber(math.Abs(a - c))
	return 1
}

func checkPlayer(state *lua.State, index int) model.PlayerHandle {
	switch state.TypeOf(index) {
	case lua.TypeNone, lua.TypeNil:
		return nil
	case lua.TypeString:
		name, _ := state.ToString(index)
		return model.Player(name)
	case lua.TypeTable:
		state.Field(index, "nameTag")
		name, ok := state.ToString(-1)
		state.Pop(1)
		if !ok {
			lua.ArgumentError(state, index, "player table needs a nameTag string")
			return nil
		}
		return model.Player(name)
	default:
		lua.ArgumentError(state, index, "player must be a name or a table with nameTag")
		return nil
	}
}

func checkUnitField(state *lua.State, index int, unit model.TimeUnit) float64 {
	state.Field(index, string(unit))
	value, ok := state.ToNumber(-1)
	state.Pop(1)
	if !ok {
		lua.ArgumentError(state, index, fmt.Sprintf("time has no numeric %s field", unit))
		return 0
	}
	return value
}

func pushTimeItem(state *lua.State, item model.TimeItem) {
	state.NewTable()
	for _, unit := range model.TimeUnits() {
		value, _ := item.Value(unit)
		state.PushNumber(value)
		state.SetField(-2, string(unit))
	}
}
