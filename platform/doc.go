// Package platform declares the OS-abstraction traits the core depends on
// without ever naming a specific operating system: virtual memory,
// filesystem, timing, thread-local storage, CPU topology, process
// sleep/yield, stack walking, a verbosity-leveled output device, and a
// console-variable registry with a priority-ordered set-by chain.
//
// Every type here is a trait (interface) plus, where the behavior is
// genuinely OS-independent, a generic implementation built on the Go
// standard library — the same relationship the source's GenericPlatform*
// files have to their Windows*/Mac* overrides. This package carries no
// concrete OS-specific backend; that translation layer is out of scope,
// the same way hal stops at dx12/vulkan/metal's interface boundary.
package platform
