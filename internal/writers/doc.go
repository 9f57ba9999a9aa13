// Package writers maps output formats to renderers.
//
// Design:
//   • Renderers own all presentation knowledge (terminal text, PNG, SVG).
//   • The presenter stays data-only and never picks a format.
//   • Formats register themselves in init() blocks; callers dispatch by name.
package writers
