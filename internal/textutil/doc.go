// Package textutil provides text processing helpers shared by the lyrics
// parser, the lyrics sources, and the CLI.
//
// The primary use cases are:
//   - Normalizing lyric text to Unicode NFC so identical lyrics compare equal
//   - Folding tag keys so metadata lookups are case-insensitive
//   - Sanitizing track identifiers for safe filesystem use
package textutil
