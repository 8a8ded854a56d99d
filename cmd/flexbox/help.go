// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The flexbox command lays out flex documents.

Usage:

	flexbox [flags] <document>...

Each document is a TOML (.toml) or YAML (.yaml, .yml) description of a
flex container and its children. For every document, flexbox prints the
bounds of the root and of every visible descendant, one per line:

	<path> <left> <top> <right> <bottom>

Documents are laid out concurrently and printed in argument order.

The -width and -height flags constrain the root container in pixels. An
empty value leaves the axis unconstrained. -width tty uses the number
of columns of the terminal.

The -mode flag selects how -width and -height constrain the root:
exactly (the default) or atmost.

The -dp flag sets the number of pixels per dp and sp.

The -png flag renders the layout to a PNG file. With several documents
the document name is appended to the file name. The -scale flag scales
the rendered image.

The -convert flag prints the documents in another format, toml or yaml,
instead of laying them out.

The -v flag logs progress to standard error.
`
