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

// Package names provides human readable names for printer commands.
//
// The tables cover the PCL5 escape sequences, the PCL5 control characters
// and the HP-GL/2 commands documented in the HP technical reference manuals,
// together with some vendor extensions.
package names

import (
	"golang.org/x/exp/slices"

	"seehuhn.de/go/pcl"
)

var controlNames = map[string]string{
	"0x08": "Backspace",
	"0x09": "Horizontal Tab",
	"0x0A": "Line Feed",
	"0x0C": "Form Feed",
	"0x0D": "Carriage Return",
	"0x0E": "Shift Out",
	"0x0F": "Shift In",
}

// Describe returns a short description of the command.
// For commands not found in the tables, a description starting with
// "Unknown" is returned.
func Describe(cmd pcl.Command) string {
	key := cmd.Key()
	switch cmd.(type) {
	case pcl.Text:
		return "Text"
	case pcl.ControlCharacter:
		if name, ok := controlNames[key]; ok {
			return name
		}
		return "Unknown Control Character " + key
	case pcl.TwoByteCommand, pcl.ParameterizedCommand:
		if name, ok := pclNames[key]; ok {
			return name
		}
		return "Unknown PCL Command " + key
	case pcl.PjlCommand:
		return "PJL Command"
	case pcl.HpglCommand:
		if name, ok := hpglNames[key]; ok {
			return name
		}
		return "Unknown HP-GL/2 Command " + key
	default:
		return "Unknown Command " + key
	}
}

// Lookup returns the name of the command with the given key.
func Lookup(lang pcl.Language, key string) (string, bool) {
	if lang == pcl.PCL5 {
		if name, ok := controlNames[key]; ok {
			return name, true
		}
	}
	name, ok := table(lang)[key]
	return name, ok
}

// Keys returns the keys of all named commands of the given language, in
// sorted order.  For PCL5, the keys of the control characters are
// included.
func Keys(lang pcl.Language) []string {
	tab := table(lang)
	if tab == nil {
		return nil
	}
	keys := make([]string, 0, len(tab))
	for key := range tab {
		keys = append(keys, key)
	}
	if lang == pcl.PCL5 {
		for key := range controlNames {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys
}

func table(lang pcl.Language) map[string]string {
	switch lang {
	case pcl.PCL5:
		return pclNames
	case pcl.HPGL2:
		return hpglNames
	default:
		return nil
	}
}
