// Package logtail reads the tail of missionctl's zap JSON log.
//
// Tail keeps a ring buffer of the last n matching entries, so memory is
// bounded by n rather than the file size. Parse understands the fields the
// zap production encoder writes (ts, level, msg); every other key is kept as
// a structured field and lines that are not JSON pass through untouched.
//
// Example usage:
//
//	entries, err := logtail.Tail(cfg.Log.File, 40, zapcore.WarnLevel)
//	if err != nil {
//		return err
//	}
//	for _, e := range entries {
//		fmt.Println(logtail.Format(e))
//	}
package logtail
