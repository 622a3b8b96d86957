package specscot

import (
	"os"

	"github.com/pkg/errors"
)

// writeSpecArtifact writes the agent's summary to a temporary markdown file and
// returns its path along with a cleanup function removing the file. The caller
// is expected to defer cleanup so the artifact goes away whether the upload
// succeeds or not
func writeSpecArtifact(summary string) (path string, cleanup func(), err error) {
	tmp, err := os.CreateTemp("", "spec-*.md")
	if err != nil {
		return "", nil, errors.Wrap(err, "error creating temporary spec file")
	}

	path = tmp.Name()
	cleanup = func() {
		os.Remove(path)
	}

	if _, err = tmp.WriteString(summary); err != nil {
		tmp.Close()
		cleanup()
		return "", nil, errors.Wrapf(err, "error writing spec content to [%s]", path)
	}

	if err = tmp.Close(); err != nil {
		cleanup()
		return "", nil, errors.Wrapf(err, "error closing spec file [%s]", path)
	}

	return path, cleanup, nil
}
