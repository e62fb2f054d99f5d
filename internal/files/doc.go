// Package files groups the input-side sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - loader: CSV parsing of the messages and categories inputs and their outer join
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/dretl/internal/files/filesystem"
//	    "github.com/vvka-141/dretl/internal/files/loader"
//	)
//
//	l := loader.NewLoader(filesystem.NewOSFileSystem(), checksum.New(), logger, loader.Options{})
//	merged, err := l.Load("disaster_messages.csv", "disaster_categories.csv")
package files
