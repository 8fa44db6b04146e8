package sz

// Version is the wrapper's semantic version, populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the version of this SDK wrapper. The native
// library reports its own version separately, through Product.GetVersion
// on an initialized environment.
func WrapperVersion() string {
	return Version
}
