package workspace

import (
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"

	"github.com/pescuma/mycat/lib/buffers"
	"github.com/pescuma/mycat/lib/model"
	"github.com/pescuma/mycat/lib/sources"
	"github.com/pescuma/mycat/lib/transform"
)

// Workspace gathers the transformed content of every source in memory. Nothing
// is written out until Write is called, so a failing source leaves no partial
// output behind.
type Workspace struct {
	config  model.Config
	reader  *sources.Reader
	out     *buffers.Buffer
	logger  *slog.Logger
	sources int
}

func NewWorkspace(config model.Config, stdin io.Reader, logger *slog.Logger) (*Workspace, error) {
	out, err := buffers.New(buffers.DefaultCapacity)
	if err != nil {
		return nil, err
	}

	logger.Debug("Created workspace",
		"number", config.Number.String(),
		"squeeze-blank", config.SqueezeBlank,
		"show-ends", config.ShowEnds)

	return &Workspace{
		config: config,
		reader: sources.NewReader(stdin, logger),
		out:    out,
		logger: logger,
	}, nil
}

// Append reads the named source and appends its transformed content.
func (w *Workspace) Append(name string) error {
	data, err := w.reader.Read(name)
	if err != nil {
		return err
	}

	err = transform.Append(w.out, w.config, data)
	if err != nil {
		return err
	}

	w.sources++

	return nil
}

// AppendAll appends names in order, stopping at the first failure.
func (w *Workspace) AppendAll(names []string) error {
	for _, name := range names {
		err := w.Append(name)
		if err != nil {
			return err
		}
	}

	return nil
}

// Write flushes everything gathered so far to out in a single write.
func (w *Workspace) Write(out io.Writer) error {
	n, err := w.out.WriteTo(out)
	if err != nil {
		return err
	}

	pc := pluralize.NewClient()
	w.logger.Debug("Wrote output",
		"sources", pc.Pluralize("source", w.sources, true),
		"size", humanize.Bytes(uint64(n)),
		"numbered", pc.Pluralize("line", w.out.Lines(), true))

	return nil
}
