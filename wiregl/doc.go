// Package wiregl is a minimal 3D wireframe engine for memory-constrained hosts.
//
// It owns mesh storage (vertices and unordered edges), a fixed rotate/project
// pipeline, and a restricted OBJ reader. Drawing is delegated to a
// caller-provided LineSink that receives one segment per edge; the package
// carries no display driver of its own.
//
// Pipeline (fixed):
//
//	Original vertices → rotate X, Y, Z (degrees) → perspective divide → LineSink.
//
// Everything is single-threaded. Objects are never shared between goroutines
// and storage is released only by an explicit Release call.
package wiregl
