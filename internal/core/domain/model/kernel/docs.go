// Package kernel provides the shared value objects of the basket splitting domain.
//
// The package includes:
//   - UUID: the identifier attached to every basket split request
package kernel
