package engine

import (
	"fmt"
	"strings"

	"github.com/san-kum/cubespin/internal/geom"
)

// Command is a message delivered by the host.
type Command int

const (
	CmdRotateX Command = iota
	CmdRotateY
	CmdRotateZ
	CmdReverse
	CmdVelocityUp
	CmdVelocityDown
	CmdAddCube
	CmdRemoveCube
	CmdTick
)

type binding struct {
	label string
	name  string
	keys  []string
}

var bindings = map[Command]binding{
	CmdRotateX:      {"Rotate X", "rotate-x", []string{"x"}},
	CmdRotateY:      {"Rotate Y", "rotate-y", []string{"y"}},
	CmdRotateZ:      {"Rotate Z", "rotate-z", []string{"z"}},
	CmdReverse:      {"Reverse the Directions", "reverse", []string{"r"}},
	CmdVelocityUp:   {"Velocity ↑↑", "velocity-up", []string{"+", "="}},
	CmdVelocityDown: {"Velocity ↓↓", "velocity-down", []string{"-"}},
	CmdAddCube:      {"Add a Cube +", "add-cube", []string{"a"}},
	CmdRemoveCube:   {"Remove a Cube -", "remove-cube", []string{"d"}},
	CmdTick:         {"Tick", "tick", []string{"."}},
}

// Buttons lists the user-facing commands in display order.
func Buttons() []Command {
	return []Command{
		CmdRotateX, CmdRotateY, CmdRotateZ,
		CmdReverse,
		CmdVelocityUp, CmdVelocityDown,
		CmdAddCube, CmdRemoveCube,
	}
}

func (c Command) Label() string  { return bindings[c].label }
func (c Command) String() string { return bindings[c].name }

// Key is the primary keyboard shortcut.
func (c Command) Key() string {
	if k := bindings[c].keys; len(k) > 0 {
		return k[0]
	}
	return ""
}

// ParseCommand resolves a command by name or shortcut key.
func ParseCommand(s string) (Command, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for cmd, b := range bindings {
		if b.name == name {
			return cmd, nil
		}
		for _, k := range b.keys {
			if k == name {
				return cmd, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// ParseCommands splits a comma separated list.
func ParseCommands(s string) ([]Command, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	cmds := make([]Command, 0, len(parts))
	for _, p := range parts {
		cmd, err := ParseCommand(p)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// Apply runs one command to completion. Only CmdTick moves the cube.
func (e *Engine) Apply(cmd Command) {
	switch cmd {
	case CmdRotateX:
		e.ctrl.Accelerate(geom.AxisX)
	case CmdRotateY:
		e.ctrl.Accelerate(geom.AxisY)
	case CmdRotateZ:
		e.ctrl.Accelerate(geom.AxisZ)
	case CmdReverse:
		e.ctrl.ReverseDirection()
	case CmdVelocityUp:
		e.ctrl.ScaleVelocity(ScaleUp)
	case CmdVelocityDown:
		e.ctrl.ScaleVelocity(ScaleDown)
	case CmdAddCube:
		e.AddReplica()
	case CmdRemoveCube:
		e.RemoveReplica()
	case CmdTick:
		e.Tick()
	}
}

func (e *Engine) ApplyAll(cmds []Command) {
	for _, c := range cmds {
		e.Apply(c)
	}
}
