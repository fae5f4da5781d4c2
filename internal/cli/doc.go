// Package cli implements the indicate command-line interface.
//
// # Command Structure
//
// The root command shows the overlay and follows protocol lines on stdin:
//
//	indicate [text]      - Show the overlay, reading updates from stdin
//	indicate check [file] - Replay a bootstrap file and print the state
//	indicate version     - Print version information
//	indicate completion  - Generate shell completion scripts
//
// # Startup
//
// The root command builds its first display state in this order:
//
//  1. Defaults, with right_aligned taken from settings
//  2. The bootstrap file (--bootstrap, $INDICATE_CONFIG, or
//     ~/.config/indicate/config.rc), replayed line by line
//  3. --font, --color, --progress, --speed, --current and --max, turned
//     into protocol lines and parsed by the same parser
//  4. Positional text
//  5. Lines from stdin until the text is non-empty
//
// Only then is the overlay shown. Any failure up to this point is fatal,
// even with --lenient.
//
// # Live updates
//
// After startup a goroutine keeps feeding stdin into the shared state.
// When stdin closes or a line is malformed (and --lenient is off) the
// overlay exits with a non-zero status and the reason on stderr.
package cli
