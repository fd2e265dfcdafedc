package pipeline

import (
	"github.com/backmassage/mojifix/internal/config"
	"github.com/backmassage/mojifix/internal/display"
	"github.com/backmassage/mojifix/internal/logging"
)

// Run is the top-level entry point. It discovers candidates under
// cfg.Root and rewrites them one at a time. The first error aborts the
// run; the returned stats then cover only the files completed before it.
func Run(cfg *config.Config, log *logging.Logger) (RunStats, error) {
	return run(cfg, log, DefaultFilter())
}

func run(cfg *config.Config, log *logging.Logger, f *Filter) (RunStats, error) {
	var stats RunStats

	files, err := Discover(cfg.Root, f)
	if err != nil {
		return stats, err
	}
	stats.Total = len(files)
	log.Debug(cfg.Verbose, "Found %d candidate files under %s", stats.Total, cfg.Root)

	for _, c := range files {
		res, err := RewriteFile(c)
		if err != nil {
			return stats, err
		}
		stats.add(res)
	}

	log.Debug(cfg.Verbose, "Scanned %d files (%s read, %s written), %d unchanged, %d replacements",
		stats.Scanned, display.FormatBytes(stats.BytesRead), display.FormatBytes(stats.BytesWritten),
		stats.Unchanged, stats.Replacements)
	return stats, nil
}
