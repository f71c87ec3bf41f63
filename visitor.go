// seehuhn.de/go/pcl - decoding of PCL printer data streams
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pcl

import "fmt"

// Visitor has one method for each command type.
//
// Code which only needs some of the command types can use a type switch
// on [Command] instead.
type Visitor interface {
	Text(Text) error
	ControlCharacter(ControlCharacter) error
	TwoByteCommand(TwoByteCommand) error
	ParameterizedCommand(ParameterizedCommand) error
	PjlCommand(PjlCommand) error
	HpglCommand(HpglCommand) error
}

// Visit calls the method of v which corresponds to the type of cmd.
func Visit(cmd Command, v Visitor) error {
	switch cmd := cmd.(type) {
	case Text:
		return v.Text(cmd)
	case ControlCharacter:
		return v.ControlCharacter(cmd)
	case TwoByteCommand:
		return v.TwoByteCommand(cmd)
	case ParameterizedCommand:
		return v.ParameterizedCommand(cmd)
	case PjlCommand:
		return v.PjlCommand(cmd)
	case HpglCommand:
		return v.HpglCommand(cmd)
	default:
		return fmt.Errorf("unexpected command type %T", cmd)
	}
}

// VisitorHandler returns a [Handler] which passes every command to v.
func VisitorHandler(v Visitor) Handler {
	return func(cmd Command) error {
		return Visit(cmd, v)
	}
}
