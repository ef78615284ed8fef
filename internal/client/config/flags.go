package config

import (
	"flag"
	"os"

	"github.com/mygaadi/mygaadi/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   backing store adapter: local or remote
//	-d string   path of the local SQLite database
//	-m string   URI of the remote document database
//	-r int      reminder lead time in days (7, 14 or 30)
//	-o string   default sort order: newest or oldest
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// packages do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-m", "-r", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Adapter, "a", cfg.Adapter, "backing store adapter (local|remote)")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "local database path")
	fs.StringVar(&cfg.MongoURI, "m", cfg.MongoURI, "document database URI")
	fs.IntVar(&cfg.ReminderLeadTime, "r", cfg.ReminderLeadTime, "reminder lead time in days (7|14|30)")
	fs.StringVar(&cfg.DefaultSortOrder, "o", cfg.DefaultSortOrder, "default sort order (newest|oldest)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
