package manifest

import "github.com/cargosim/cargosim/sim"

// FileSource re-reads its file on every call, so edits between trials are
// picked up and read errors surface per trial.
type FileSource struct {
	Path string
}

func (fs FileSource) Items() ([]sim.Item, error) {
	m, err := LoadFile(fs.Path)
	if err != nil {
		return nil, err
	}
	return m.Items()
}
