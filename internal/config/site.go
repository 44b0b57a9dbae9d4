package config

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/natarelva/portfolio/internal/profile"
	"github.com/natarelva/portfolio/internal/theme"
)

// SiteFile is the optional YAML document with page content and theme.
type SiteFile struct {
	Site  profile.Site `yaml:"site"`
	Theme theme.Theme  `yaml:"theme"`
}

// LoadSite reads path. When the file does not exist it returns fallback
// together with the open error so the caller can warn and carry on; any
// other open error is returned with a nil SiteFile. An empty file also
// yields fallback.
func LoadSite(path string, fallback SiteFile) (*SiteFile, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		fallback.Defaults()
		return &fallback, err
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeSite(f, fallback)
}

// SiteFromReader decodes a site document. An empty document yields only the
// defaults, which fail validation for lack of a profile.
func SiteFromReader(r io.Reader) (*SiteFile, error) {
	return decodeSite(r, SiteFile{})
}

// decodeSite returns empty when the document has no content at all.
func decodeSite(r io.Reader, empty SiteFile) (*SiteFile, error) {
	var sf SiteFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		if !errors.Is(err, io.EOF) {
			return nil, err
		}
		sf = empty
	}
	sf.Defaults()
	if err := sf.Validate(); err != nil {
		return nil, err
	}
	return &sf, nil
}

func (sf *SiteFile) Defaults() {
	sf.Site.Defaults()
	sf.Theme.Defaults()
}

func (sf *SiteFile) Validate() error {
	return errors.Join(sf.Site.Validate(), sf.Theme.Validate())
}
