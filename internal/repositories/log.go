package repositories

import (
	"strings"

	"github.com/sbilibin2017/gw-evault/internal/logger"
)

// logQuery logs a query on a single line with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// escapeLike escapes LIKE wildcards so the input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
