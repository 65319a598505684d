// Package ndarray provides the core array types: buffers, shapes, strided views,
// dtype promotion and broadcasting.
package ndarray
