package scaffold

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/migmedia/planturl/internal/app/template"
	"github.com/migmedia/planturl/internal/domain"
	"github.com/migmedia/planturl/internal/infra/config"
	"github.com/migmedia/planturl/internal/ports"
)

const configTemplate = `planturl:
  server:
    url: {{server}}
    # svg, png or ascii
    type: {{type}}
    timeout: {{timeout}}
  # deflate, hex or best
  compression: {{compression}}
  # output:
  #   file: out/diagram.svg
`

const exampleDiagram = `@startuml
Bob -> Alice : hello
@enduml
`

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init writes planturl.yaml with cfg's values, an example diagram and the
// .gitignore entries planturl needs into root. Existing files are kept unless
// force is set; .gitignore is only ever appended to.
func (i *Initializer) Init(root string, cfg domain.Config, force bool) ([]string, error) {
	root = filepath.Clean(root)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fail(root, err)
	}

	body, err := template.RenderString(configTemplate, template.ConfigVars(cfg))
	if err != nil {
		return nil, err
	}

	files := []struct {
		rel     string
		content string
	}{
		{config.FileName, body},
		{filepath.Join("diagrams", "hello.puml"), exampleDiagram},
	}

	var written []string
	for _, f := range files {
		dst := filepath.Join(root, f.rel)

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				continue
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return written, fail(dst, err)
		}
		if err := os.WriteFile(dst, []byte(f.content), 0o644); err != nil {
			return written, fail(dst, err)
		}
		written = append(written, dst)
	}

	if err := ensureGitignore(root); err != nil {
		return written, fail(filepath.Join(root, ".gitignore"), err)
	}
	return written, nil
}

func fail(path string, err error) error {
	return &domain.OpError{
		Op:   "scaffold.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

func ensureGitignore(root string) error {
	const header = "# planturl"
	entries := []string{
		config.EnvFileName,
		"*.log",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		present[trimmed] = true
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 32)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
