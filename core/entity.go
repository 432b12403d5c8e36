package core

// Entity is an opaque, stable handle; 0 is never allocated
type Entity uint64
