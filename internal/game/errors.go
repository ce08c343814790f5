package game

import "fmt"

// InitError is a failed window, context or OpenGL setup step.
type InitError struct {
	Stage string
	Err   error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Stage, e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// CompileError carries the driver's info log for a shader that failed to
// compile.
type CompileError struct {
	Program string
	Stage   string // vertex, geometry, fragment
	Log     string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s %s shader: %s", e.Program, e.Stage, e.Log)
}

// LinkError carries the driver's info log for a program that failed to link.
type LinkError struct {
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link %s program: %s", e.Program, e.Log)
}
