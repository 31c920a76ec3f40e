// Package terminal hosts the particle field on a tcell screen.
//
// Features:
//   - Canvas: cell rasterizer presented as true color cells (tcell downsamples for 256-color terminals)
//   - Pump: terminal resize, mouse, focus and key events translated to surface-unit events
//   - Ticker: refresh-rate paced frame source
//   - Stats overlay and crash-time terminal restoration
package terminal
