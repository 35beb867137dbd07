// Package godex reads Android DEX (Dalvik Executable) files: the fixed
// header, the five interning pools (strings, types, protos, fields,
// methods), and the encoded_value items referenced from them.
//
// A File resolves its header eagerly and its pools on a strict dependency
// order (strings before types, types before protos/fields, protos before
// methods) — either lazily, the first time a pool is needed, or eagerly at
// construction with WithLazyLoading(false). The core does no internal
// synchronization: a single File must not be driven from more than one
// goroutine without external locking, though a fully-resolved, read-only
// File may be shared freely. Package async offers goroutine-offloaded
// variants of the Ensure* calls for callers that want to avoid blocking
// their own goroutine, not additional parallelism within one File.
package godex
