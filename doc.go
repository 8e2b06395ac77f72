/*
Package libopts resolves a program's command-line arguments and environment
against a declarative specification and writes the results into a
configuration tree.

The specification lives in the tree itself: keys under the "spec" namespace
carry metadata ("opt", "opt/long", "env", "args", ...) describing how a
value may be supplied on the command line or through the environment.
Resolve compiles that metadata into an option table, parses argv and envp
against it, and writes resolved values into the corresponding "proc"
namespace key, picking exactly one source per key by precedence: short
option, then long option, then environment variable, then (for array keys
bound to "args=remaining") leftover positional arguments.

Resolve also renders help text from the same compiled specification, so
the two stay in sync by construction.

See [Resolve] for the entry point, and [ConfigTree] for what a host must
provide.
*/
package libopts
