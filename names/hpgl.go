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

package names

// hpglNames maps HP-GL/2 mnemonics to command names.
var hpglNames = map[string]string{
	"AA": "Absolute Arc",
	"AC": "Anchor Corner",
	"AD": "Alternate Font Definition",
	"AF": "Advance Full Page",
	"AH": "Advance Full Page",
	"AP": "Automatic Pen Operations",
	"AR": "Arc Relative",
	"AT": "Absolute Arc Three Point",
	"AS": "Acceleration Select",
	"BF": "Buffer Plot",
	"BL": "Buffer Label",
	"BP": "Begin Plot",
	"BR": "Bezier Relative",
	"BZ": "Bezier Absolute",
	"CA": "Designate Alternate Character Set",
	"CC": "Character Chord Angle",
	"CF": "Character Fill Mode",
	"CI": "Circle",
	"CM": "Character Selection Mode",
	"CO": "Comment",
	"CP": "Character Plot",
	"CS": "Designate Standard Character Set",
	"CT": "Chord Tolerance",
	"CV": "Curved Line Generator",
	"DC": "Digitize Clear",
	"DF": "Default Values",
	"DI": "Absolute Direction",
	"DL": "Download Character",
	"DP": "Digitize Point",
	"DR": "Relative Direction",
	"DS": "Designate Character Into Slot",
	"DT": "Define Label Terminator",
	"DV": "Define Variable Text Path",
	"EA": "Edge Rectangle Absolute",
	"EC": "Enable Cutter",
	"EP": "Edge Polygon",
	"ER": "Edge Rectangle Relative",
	"ES": "Extra Space",
	"EW": "Edge Wedge",
	"FI": "Primary Font Selection By ID",
	"FN": "Secondary Font Selection By ID",
	"FP": "Fill Polygon",
	"FR": "Frame Advance",
	"FS": "Force Select",
	"FT": "Fill Type",
	"GC": "Group Count",
	"GM": "Graphics Memory",
	"IM": "Input Mask",
	"IN": "Initialize",
	"IP": "Input P1 And P2",
	"IR": "Input Relative P1 And P2",
	"IV": "Invoke Character Slot",
	"IW": "Input Window",
	"KY": "Define Key",
	"LA": "Line Attributes",
	"LB": "Label",
	"LM": "Label Mode",
	"LO": "Label Origin",
	"LT": "Line type",
	"MC": "Merge Control",
	"MG": "Message",
	"MT": "Media Type",
	"NP": "Number Of Pens",
	"NR": "Not Ready",
	"OA": "Output Actual position And Pen Status",
	"OC": "Output Commanded Position And Pen Status",
	"OD": "Output Digitized Point And Pen Status",
	"OE": "Output Error",
	"OF": "Output Factors",
	"OG": "Output Group Count",
	"OH": "Output Hard-Clip Limits",
	"OI": "Output Identification",
	"OK": "Output Key",
	"OL": "Output Label Length",
	"OO": "Output options",
	"OP": "Output P1 And P2",
	"OS": "Output Status",
	"OT": "Output Carousel Type",
	"OW": "Output Window",
	"PA": "Plot Absolute",
	"PB": "Print Buffered Label",
	"PC": "Pen Color Assignment",
	"PD": "Pen Down",
	"PE": "Polyline Encoded",
	"PG": "Advance Full Page",
	"PM": "Polygon Mode",
	"PP": "Pixel Placement",
	"PR": "Plot Relative",
	"PS": "Plot Size",
	"PT": "Pen Thickness",
	"PU": "Pen Up",
	"RA": "Fill Rectangle Absolute",
	"RO": "Rotate Coordinate System",
	"RP": "Replot",
	"RR": "Fill Rectangle Relative",
	"RT": "Relative Arc Three Point",
	"SA": "Select Alternate Font",
	"SB": "Scaleable Or Bitmap Fonts",
	"SC": "Scale",
	"SV": "Screened Vectors",
	"SD": "Standard Font Definition",
	"SI": "Absolute Character Size",
	"SL": "Character Slant",
	"SM": "Symbol Mode",
	"SP": "Select Pen",
	"SR": "Relative Character Size",
	"SS": "Select Standard Font",
	"ST": "Sort",
	"TD": "Transparent Data",
	"TL": "Tick Length",
	"TR": "Transparency Mode",
	"UC": "User-Defined Character",
	"UF": "User-Defined Fill Type",
	"UL": "User-Defined Line Type",
	"VS": "Velocity Select",
	"WD": "Write To Display",
	"WG": "Fill Wedge",
	"WU": "Pen Width Unit Selection",
	"XT": "X-Tick",
	"YT": "Y-Tick",
}
