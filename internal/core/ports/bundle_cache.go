package ports

// BundleCache maps a logical bundle key to the output path compiled for it during the
// current build. Entries live until Reset.
type BundleCache interface {
	// Lookup returns the recorded output path for key.
	Lookup(key string) (string, bool)
	// Record stores the output path for key. It must only be called after the
	// output file has been fully written.
	Record(key, outputPath string)
	// Reset drops every entry. Owners call it at the start of each build.
	Reset()
}
