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

// pclNames maps the keys of PCL5 escape sequences to their names.
var pclNames = map[string]string{
	"E": "Printer Reset",
	"9": "Clear Horizontal Margins",
	"=": "Half Line Feed",
	"Y": "Display Functions Enable",
	"Z": "Display Functions Disable",
	"%A": "Enter PCL Mode",
	"%B": "Enter HP-GL/2 Mode",
	"%X": "Universal Exit Language",
	"&aC": "Horizontal Cursor Positioning (Column)",
	"&aG": "Duplex Page Side Selection",
	"&aH": "Horizontal Cursor Positioning (Decipoints)",
	"&aL": "Left Margin",
	"&aM": "Right Margin",
	"&aN": "Negative Motion",
	"&aP": "Print Direction",
	"&aR": "Vertical Cursor Positioning (Rows)",
	"&aT": "Set Horizontal Tab",
	"&aU": "Clear Horizontal Tab",
	"&aV": "Vertical Cursor Positioning (Decipoints)",
	"&aW": "User Defined Logical Page",
	"&bF": "Finish Mode",
	"&bM": "Monochrome Print Mode",
	"&bT": "Dry Time",
	"&bW": "Configuration (AppleTalk)",
	"&cT": "Character Text Path Direction",
	"&cW": "Cluster Printing",
	"&d@": "Disable Underline",
	"&dD": "Enable Underline",
	"&fF": "Media Eject Length (Decipoints)",
	"&fG": "Page Width (Decipoints)",
	"&fS": "Push / Pop Cursor Position",
	"&fX": "Macro Control",
	"&fY": "Macro ID",
	"&iW": "Underware Function Configuration",
	"&kE": "Underline Enhancement",
	"&kF": "Shift In/Out Control",
	"&kG": "Line Termination",
	"&kH": "Horizontal Motion Index (1/120 inches)",
	"&kI": "Character Set Selection Control",
	"&kS": "Pitch Mode",
	"&kV": "Head View Mode",
	"&kW": "Set Print Mode",
	"&lA": "Page Size",
	"&lC": "Vertical Motion Index",
	"&lD": "Line Spacing",
	"&lE": "Top Margin",
	"&lF": "Text Length",
	"&lG": "Output Bin Selection",
	"&lH": "Paper Source",
	"&lJ": "Auto Justification",
	"&lL": "Perforation Skip",
	"&lM": "Media Type",
	"&lO": "Page Orientation",
	"&lP": "Page Length (Lines)",
	"&lR": "Clear Vertical Tab Absolute (Line)",
	"&lS": "Simplex/Duplex Print",
	"&lT": "Job Separation",
	"&lU": "Left Offset Registration (Decipoints)",
	"&lV": "Vertical Position Via VFC (Channel)",
	"&lW": "Define VFC Table",
	"&lX": "Number Of Copies",
	"&lY": "Set Vertical Tab Absolute (Line)",
	"&lZ": "Top Offset Registration (Decipoints)",
	"&nW": "Paper Type",
	"&pC": "Palette Control",
	"&pI": "Palette Control ID",
	"&pS": "Select Palette",
	"&pW": "Escapement Encapsulated Text",
	"&pX": "Transparent Print Data",
	"&rF": "Flush All Pages",
	"&sC": "End Of Line Wrap",
	"&sI": "Character Set Default Control",
	"&tP": "Text Parsing Method",
	"&uD": "Unit Of Measure",
	"&vS": "Text Color",
	"(@": "Select Primary Default Font",
	"(A": "Primary Symbol Set",
	"(B": "Primary Symbol Set",
	"(C": "Primary Symbol Set",
	"(D": "Primary Symbol Set",
	"(E": "Primary Symbol Set",
	"(F": "Primary Symbol Set",
	"(G": "Primary Symbol Set",
	"(H": "Primary Symbol Set",
	"(I": "Primary Symbol Set",
	"(J": "Primary Symbol Set",
	"(K": "Primary Symbol Set",
	"(L": "Primary Symbol Set",
	"(M": "Primary Symbol Set",
	"(N": "Primary Symbol Set",
	"(O": "Primary Symbol Set",
	"(P": "Primary Symbol Set",
	"(Q": "Primary Symbol Set",
	"(R": "Primary Symbol Set",
	"(S": "Primary Symbol Set",
	"(T": "Primary Symbol Set",
	"(U": "Primary Symbol Set",
	"(V": "Primary Symbol Set",
	"(W": "Primary Symbol Set",
	"(X": "Primary Font Selection By ID",
	"(Y": "Primary Symbol Set",
	"(Z": "Primary Symbol Set",
	"(fW": "Define Symbol Set",
	"(sB": "Primary Stroke Weight",
	"(sH": "Primary Pitch (Characters Per Inch)",
	"(sP": "Primary Spacing",
	"(sQ": "Primary Quality",
	"(sS": "Primary Style",
	"(sT": "Primary Typeface",
	"(sU": "Primary Placement",
	"(sV": "Primary Height (Points)",
	"(sW": "Character Definition",
	")@": "Select Secondary Default Font",
	")A": "Secondary Symbol Set",
	")B": "Secondary Symbol Set",
	")C": "Secondary Symbol Set",
	")D": "Secondary Symbol Set",
	")E": "Secondary Symbol Set",
	")F": "Secondary Symbol Set",
	")G": "Secondary Symbol Set",
	")H": "Secondary Symbol Set",
	")I": "Secondary Symbol Set",
	")J": "Secondary Symbol Set",
	")K": "Secondary Symbol Set",
	")L": "Secondary Symbol Set",
	")M": "Secondary Symbol Set",
	")N": "Secondary Symbol Set",
	")O": "Secondary Symbol Set",
	")P": "Secondary Symbol Set",
	")Q": "Secondary Symbol Set",
	")R": "Secondary Symbol Set",
	")S": "Secondary Symbol Set",
	")T": "Secondary Symbol Set",
	")U": "Secondary Symbol Set",
	")V": "Secondary Symbol Set",
	")W": "Secondary Symbol Set",
	")X": "Secondary Font Selection By ID",
	")Y": "Secondary Symbol Set",
	")Z": "Secondary Symbol Set",
	")sB": "Secondary Stroke Weight",
	")sH": "Secondary Font: Pitch (Characters Per Pnch)",
	")sP": "Secondary Spacing",
	")sQ": "Secondary Quality",
	")sS": "Secondary Style",
	")sT": "Secondary Typeface",
	")sU": "Secondary Placement",
	")sV": "Secondary Height (Points)",
	")sW": "Font Header",
	"*bB": "Set Black Optimization",
	"*bM": "Set Compression Method",
	"*bS": "Seed Row Source (Plane)",
	"*bV": "Transfer Raster Data By Plane",
	"*bW": "Transfer Raster Data By Block",
	"*bX": "Raster Line X Offset (Pixels)",
	"*bY": "Raster Y Offset (Raster lines)",
	"*cA": "Horizontal Rectangle Size By PCL-Units",
	"*cB": "Vertical Rectangle Size By PCL-Units",
	"*cC": "Large Character Placement (Column)",
	"*cD": "Font ID",
	"*cE": "Character Code",
	"*cF": "Font Control",
	"*cG": "Pattern ID",
	"*cH": "Horizontal Rectangle Size By Decipoints",
	"*cK": "Horizontal HP-GL/2 Plot Size (Inches)",
	"*cL": "Vertical HP-GL/2 Plot Size (Inches)",
	"*cM": "Large Character Size (Magnification)",
	"*cN": "Large Character Tab",
	"*cP": "Fill Rectangular Area",
	"*cQ": "Pattern Control",
	"*cR": "Symbol Set ID Code",
	"*cS": "Symbol Set Control",
	"*cT": "Set Picture Frame Anchor Point",
	"*cV": "Vertical Rectangle Size By Decipoints",
	"*cW": "User Defined Pattern",
	"*cX": "Horizontal Picture Frame Size (Decipoints)",
	"*cY": "Vertical Picture Frame Size (Decipoints)",
	"*cZ": "Large Character Print Data",
	"*gW": "Configure Raster Data",
	"*iW": "Viewing Illuminant",
	"*lO": "Logical Operation (ROP3)",
	"*lP": "Clip Mask",
	"*lR": "Pixel Placement",
	"*lW": "Color Lookup Tables",
	"*mW": "Download Dither Matrix",
	"*oD": "Color Raster Depletion",
	"*oM": "Print Quality",
	"*oQ": "Mechanical Print Quality",
	"*oW": "Driver Configuration",
	"*pN": "Set Graphics Print Mode",
	"*pP": "Push / Pop Palette",
	"*pR": "Set Pattern Reference Point",
	"*pX": "Horizontal Cursor Positioning (PCL-Units)",
	"*pY": "Vertical Cursor Positioning (PCL-Units)",
	"*rA": "Start Raster Graphics",
	"*rB": "End Raster Graphics (PCL4)",
	"*rC": "End Raster Graphics",
	"*rF": "Raster Graphics Presentation",
	"*rL": "Horizontal Raster Resolution (Dots Per Inch)",
	"*rQ": "Raster Graphics Quality",
	"*rS": "Source Raster Width",
	"*rT": "Source Raster Height",
	"*rU": "Simple Color",
	"*rV": "Vertical Raster Resolution (Dots Per Inch)",
	"*sI": "Inquire Status Readback Entity",
	"*sM": "Free Space",
	"*sT": "Set Status Readback Location Type",
	"*sU": "Set Status Readback Location Unit",
	"*sX": "Echo",
	"*s^": "Return Model Number",
	"*tF": "QMS Magnum-5 Interpreter",
	"*tG": "GPIS Data Binding",
	"*tH": "Destination Raster Width (Decipoints)",
	"*tI": "Gamma Correction",
	"*tJ": "Render Algorithm",
	"*tK": "Scale Algorithm",
	"*tM": "Vector Graphics Operating Mode",
	"*tN": "Vector Graphics Mapping Mode",
	"*tP": "Vector Graphics Print Control",
	"*tR": "Raster Graphics Resolution (Dots Per Inch)",
	"*tV": "Destination Raster Height",
	"*tW": "GPIS Data Transfer",
	"*vA": "Color Component 1",
	"*vB": "Color Component 2",
	"*vC": "Color Component 3",
	"*vI": "Assign Color Index",
	"*vN": "Source Transparency Mode",
	"*vO": "Pattern Transparency Mode",
	"*vS": "Foreground Color",
	"*vT": "Select Current Pattern",
	"*vW": "Configure Image Data",
	"*zC": "Bar Code Label Placement (Column)",
	"*zH": "Bar Code Label Height (1/10 inches)",
	"*zQ": "Bar Code Header Control",
	"*zR": "Bar Code Wide Bar Width (Dots)",
	"*zS": "Bar Code Narrow Bar Width (Dots)",
	"*zT": "Bar Code Wide Space Width (Dots)",
	"*zU": "Bar Code Narrow Space Width (Dots)",
	"*zV": "Bar Code Selection",
	"*zX": "Bar Code Label X Offset (Dots)",
	"*zZ": "Bar Code Label",
}
