// Package main hosts the ytmeta CLI entrypoint and command graph.
//
// The root command turns one video URL into a JSON record (metadata plus
// transcript) by driving the pipeline package; subcommands cover dependency
// checks, the whisper model catalogue and configuration scaffolding. This
// package centralizes configuration resolution and logging setup so the
// commands stay declarative while the work lives in internal packages.
package main
