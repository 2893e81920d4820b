package video

import (
	"path/filepath"
	"strings"
)

// filterPathEscaper covers every character the ffmpeg filter-graph parser
// treats as structural. Replacer works in a single pass, so inserted
// backslashes are never re-escaped.
var filterPathEscaper = strings.NewReplacer(
	`\`, `\\`,
	`:`, `\:`,
	`'`, `\'`,
	` `, `\ `,
	`[`, `\[`,
	`]`, `\]`,
	`,`, `\,`,
)

// EscapeFilterPath makes a filesystem path safe to embed in a subtitles=
// filter argument.
func EscapeFilterPath(path string) string {
	return filterPathEscaper.Replace(filepath.ToSlash(path))
}
