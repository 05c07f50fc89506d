// Package viz provides terminal views of a running simulation and of the
// pair potentials behind it, built on Bubble Tea:
//
//   - [LiveModel]: steps a [sim.Simulator] and shows the box, thermo
//     history and current thermodynamics
//   - [ExploreModel]: plots energy or force against distance for each
//     type pair through [pair.Engine.Single]
//   - [Canvas]: Braille pixel canvas used by both
//   - [CanvasSVG], [CurveSVG]: static SVG snapshots of a canvas or a curve
//
// # Key Bindings
//
//	Space - Pause/Resume (live)
//	Tab   - Next type pair (explore)
//	F     - Toggle energy/force (explore)
//	T     - Cycle color themes
//	X/Y   - Rotate the box (live)
//	+/-   - Zoom
//	?     - Show help overlay
package viz
