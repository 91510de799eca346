// Package kernel provides the shared value objects of the checkout domain.
//
// The package includes:
//   - UUID: a validated identifier for checkout sessions and the orders they produce
//
// Values are immutable and safe to share between goroutines.
package kernel
