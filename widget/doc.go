// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements common flex children. Widgets implement
// layout.Measurable and can be wrapped in layout Nodes directly; Flex
// nests an entire layout.Engine as the child of another.
package widget
