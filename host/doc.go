// Package host provides the runtime environment for guests that call
// boundary imports.
//
// It owns the wazero runtime, serves the imports collected in a registry
// through the wazero adapter, and inspects compiled guests to report which
// of their imports have a boundary-eligible shape before they are linked.
package host
