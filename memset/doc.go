// Package memset fills byte slices with a single value using non-temporal
// (cache-bypassing) vector stores.
//
// Fill picks the widest instruction set the running CPU supports the first
// time it is called and reuses that choice for the lifetime of the process:
//
//   - AVX-512: 64-byte VMOVNTDQ stores (only with the avx512 build tag)
//   - AVX: 32-byte VMOVNTDQ stores
//   - SSE2: 16-byte MOVNTDQ stores
//   - baseline: ordinary stores (other architectures and the purego tag)
//
// Streaming stores do not pollute the cache, which matters when large
// buffers are filled and the data already in cache is still needed.
// They are weakly ordered, so Fill issues SFENCE before it returns: a buffer
// filled by Fill can be handed to another goroutine through any ordinary
// synchronization (channel send, mutex, atomic flag) without further care.
//
// Fill neither allocates nor frees memory and provides no coordination
// between goroutines filling the same or overlapping memory.
//
// # Configuration
//
// The environment variables MEMSET_NO_SIMD and MEMSET_MAX_TIER restrict
// tier selection at process start; see package internal/cpu.
package memset
