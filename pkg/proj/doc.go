// Package proj provides WGS84 geodetic <-> UTM coordinate transforms.
//
// Transforms run in batches: coordinate chunks are enqueued as kernels on a
// cudart execution stream and checked with the cuerr guards, so host-side
// precondition violations surface as LogicError and faults inside enqueued
// work surface as CudaError.
package proj
