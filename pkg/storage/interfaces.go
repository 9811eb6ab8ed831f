package storage

import "keymend/pkg/trend"

// Exporter persists tables under a file name, replacing any previous file
type Exporter interface {
	Export(name string, table trend.Table) (string, error)
}
