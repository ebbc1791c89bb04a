package guardkit

// Must panics when a check failed. It is meant for wiring-time preconditions
// in constructors and main, where returning the error has no audience:
//
//	guardkit.Must(guardkit.NotNil(pool, "pool"))
//	guardkit.Must(guardkit.NotBlank(cfg.Addr, "addr"))
//
// The panic value is the failure descriptor itself.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
