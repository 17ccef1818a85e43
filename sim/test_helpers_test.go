package sim

// staticManifest is a ManifestSource over an in-memory item list.
type staticManifest []Item

func (s staticManifest) Items() ([]Item, error) {
	return append([]Item(nil), s...), nil
}

// failingManifest always fails with err.
type failingManifest struct{ err error }

func (f failingManifest) Items() ([]Item, error) {
	return nil, f.err
}
