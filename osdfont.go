/*
Package osdfont is a library for converting FPV OSD font tile collections
between their interchangeable representations: raw bin files, tile grid
images, per-tile and per-symbol directories, avatar images, and paired
SD/HD collection sets built from any of them.
*/
package osdfont

import "log"

// Converter converts between tile collection formats. The symbol
// specification file is only read when a conversion target needs it.
type Converter struct {
	specsFile string
	logger    *log.Logger
}

// New returns a Converter using the given symbol specification file and
// logger.
func New(specsFile string, logger *log.Logger) *Converter {
	return &Converter{
		specsFile: specsFile,
		logger:    logger,
	}
}
