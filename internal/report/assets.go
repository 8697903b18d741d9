package report

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// Logical asset names the HTML reporter asks its resolver for.
const (
	TemplateAsset   = "report.html"
	StylesheetAsset = "report.css"
)

//go:embed templates/report.html templates/report.css
var embeddedAssets embed.FS

// AssetResolver supplies report assets (template, stylesheet) by logical
// name. The reporter does not care how assets are packaged.
type AssetResolver interface {
	Asset(name string) ([]byte, error)
}

// EmbeddedAssets resolves assets from the templates packaged into the binary.
type EmbeddedAssets struct{}

// Asset returns the embedded asset content.
func (EmbeddedAssets) Asset(name string) ([]byte, error) {
	b, err := embeddedAssets.ReadFile(path.Join("templates", name))
	if err != nil {
		return nil, fmt.Errorf("read embedded asset %s: %w", name, err)
	}
	return b, nil
}

// DirAssets resolves assets from a directory on disk, so a deployment can
// override the packaged template and stylesheet.
type DirAssets struct {
	Dir string
}

// Asset returns the content of the named file under the asset directory.
func (d DirAssets) Asset(name string) ([]byte, error) {
	b, err := os.ReadFile(filepath.Join(d.Dir, name))
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", name, err)
	}
	return b, nil
}
