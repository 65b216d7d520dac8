// Package config implements the configuration store for diffract_plot.
//
// Settings come from built-in defaults, an optional YAML file (flag or
// DIFFRACT_PLOT_CONFIG) and a few environment overrides, in that order.
// Only figure layout, output naming and logging are configurable; the
// series colors and labels are fixed.
package config
